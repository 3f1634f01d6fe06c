// Package locate finds model files under a scan root.
//
// Find walks the whole tree with godirwalk and returns every regular file
// whose name ends with the configured extension. Sort orders the result by
// folder and then by file name, which keeps each folder's files contiguous.
package locate
