// Package render creates preview images of STL meshes.
//
// A preview is produced in these steps:
//  1. load the mesh with fauxgl and decimate very large meshes with simplify
//  2. pick a flat colour from the file name markers ("[a]" red, "[c]" white,
//     anything else near-black)
//  3. frame the mesh: the longest edge of its oriented bounding box sets the
//     camera distance, and the camera aims at the surface centroid from a
//     fixed angle
//  4. rasterize with a Phong shader at a supersampled size, downscale with
//     nfnt/resize and write a PNG
//
// Render never returns an error. Every failure, including a panic inside the
// rasterizer, is reported as a failed model.RenderResult.
package render
