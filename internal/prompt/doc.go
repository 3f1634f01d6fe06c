// Package prompt asks the user for input on the terminal.
//
// Prompts go through a Driver so callers can be tested without a terminal.
// The default driver is built on survey.
package prompt
