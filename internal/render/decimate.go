package render

import (
	"github.com/fogleman/fauxgl"
	"github.com/fogleman/simplify"
)

// decimate reduces meshes with more than above triangles to roughly factor of
// their size. Smaller meshes, and meshes the simplifier empties, are returned
// unchanged.
func decimate(mesh *fauxgl.Mesh, above int, factor float64) *fauxgl.Mesh {
	if above <= 0 || len(mesh.Triangles) <= above || factor <= 0 || factor >= 1 {
		return mesh
	}

	in := make([]*simplify.Triangle, len(mesh.Triangles))
	for i, t := range mesh.Triangles {
		in[i] = &simplify.Triangle{
			V1: toSimplify(t.V1.Position),
			V2: toSimplify(t.V2.Position),
			V3: toSimplify(t.V3.Position),
		}
	}

	reduced := simplify.NewMesh(in).Simplify(factor)
	if len(reduced.Triangles) == 0 {
		return mesh
	}

	out := make([]*fauxgl.Triangle, len(reduced.Triangles))
	for i, t := range reduced.Triangles {
		out[i] = fauxgl.NewTriangleForPoints(fromSimplify(t.V1), fromSimplify(t.V2), fromSimplify(t.V3))
	}
	return fauxgl.NewTriangleMesh(out)
}

func toSimplify(v fauxgl.Vector) simplify.Vector {
	return simplify.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

func fromSimplify(v simplify.Vector) fauxgl.Vector {
	return fauxgl.Vector{X: v.X, Y: v.Y, Z: v.Z}
}
