// Package pipeline runs a checklist job as a sequence of steps.
//
// A Job carries the run state from step to step: LocateStep discovers and
// sorts the model files, RenderStep renders their previews through a
// BatchRenderer, and ChecklistStep builds and saves the spreadsheet. Runner
// wires the steps to a configuration, manages the scratch directory and
// writes the run log.
//
// Per-file render failures are part of the job state, not step errors. A
// step error ends the run.
package pipeline
