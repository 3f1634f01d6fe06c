// Package model defines the data structures shared by the printcheck packages.
//
// This package contains the following main types:
//   - ModelFile: an STL file discovered under the scan root
//   - RenderResult: the outcome of rendering one ModelFile
//   - Run: the state of one checklist run, passed through the pipeline
//
// Keeping these types in their own package lets locate, render, checklist and
// report share them without import cycles.
package model
