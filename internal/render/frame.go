package render

import (
	"math"

	"github.com/fogleman/fauxgl"
	"gonum.org/v1/gonum/mat"
)

// DistanceFactor is the camera distance as a multiple of the mesh scale.
const DistanceFactor = 2.5

// CameraAngles are the fixed Euler angles (radians, about x, y then z) of the
// front-top camera.
var CameraAngles = [3]float64{0.7, -0.3, 0.3}

// Frame is the camera framing of one mesh.
type Frame struct {
	// Center is the area-weighted surface centroid the camera aims at.
	Center fauxgl.Vector

	// Scale is the longest edge of the mesh's oriented bounding box.
	Scale float64
}

// Distance returns the camera distance from Center.
func (f Frame) Distance() float64 {
	return f.Scale * DistanceFactor
}

// Camera returns the eye position and up vector for the fixed-angle camera.
func (f Frame) Camera() (eye, up fauxgl.Vector) {
	rot := fauxgl.Identity().
		Rotate(fauxgl.V(1, 0, 0), CameraAngles[0]).
		Rotate(fauxgl.V(0, 1, 0), CameraAngles[1]).
		Rotate(fauxgl.V(0, 0, 1), CameraAngles[2])
	// MulDirection normalizes, so the distance is applied afterwards.
	eye = f.Center.Add(rot.MulDirection(fauxgl.V(0, 0, 1)).MulScalar(f.Distance()))
	up = rot.MulDirection(fauxgl.V(0, 1, 0))
	return eye, up
}

// FrameMesh computes the framing of mesh.
func FrameMesh(mesh *fauxgl.Mesh) (Frame, error) {
	if mesh == nil || len(mesh.Triangles) == 0 {
		return Frame{}, ErrEmptyMesh
	}

	points := meshPoints(mesh)
	extents := boxExtents(points)
	scale := math.Max(extents.X, math.Max(extents.Y, extents.Z))
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return Frame{}, ErrDegenerateMesh
	}

	return Frame{
		Center: surfaceCentroid(mesh, points),
		Scale:  scale,
	}, nil
}

func meshPoints(mesh *fauxgl.Mesh) []fauxgl.Vector {
	points := make([]fauxgl.Vector, 0, len(mesh.Triangles)*3)
	for _, t := range mesh.Triangles {
		points = append(points, t.V1.Position, t.V2.Position, t.V3.Position)
	}
	return points
}

// boxExtents returns the edge lengths of a tight bounding box around points.
// The principal-axis box is used unless the axis-aligned box is smaller,
// which happens for shapes without a dominant direction such as cubes.
func boxExtents(points []fauxgl.Vector) fauxgl.Vector {
	aligned := alignedExtents(points)
	oriented, ok := orientedExtents(points)
	if !ok || volume(aligned) <= volume(oriented) {
		return aligned
	}
	return oriented
}

func volume(v fauxgl.Vector) float64 {
	return v.X * v.Y * v.Z
}

func alignedExtents(points []fauxgl.Vector) fauxgl.Vector {
	lo := points[0]
	hi := points[0]
	for _, p := range points[1:] {
		lo = fauxgl.V(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y), math.Min(lo.Z, p.Z))
		hi = fauxgl.V(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y), math.Max(hi.Z, p.Z))
	}
	return hi.Sub(lo)
}

// orientedExtents projects points on the eigenvectors of their covariance.
func orientedExtents(points []fauxgl.Vector) (fauxgl.Vector, bool) {
	var mean fauxgl.Vector
	for _, p := range points {
		mean = mean.Add(p)
	}
	mean = mean.MulScalar(1 / float64(len(points)))

	var xx, xy, xz, yy, yz, zz float64
	for _, p := range points {
		d := p.Sub(mean)
		xx += d.X * d.X
		xy += d.X * d.Y
		xz += d.X * d.Z
		yy += d.Y * d.Y
		yz += d.Y * d.Z
		zz += d.Z * d.Z
	}
	cov := mat.NewSymDense(3, []float64{
		xx, xy, xz,
		xy, yy, yz,
		xz, yz, zz,
	})

	var eig mat.EigenSym
	if !eig.Factorize(cov, true) {
		return fauxgl.Vector{}, false
	}
	var axes mat.Dense
	eig.VectorsTo(&axes)

	var ext [3]float64
	for j := 0; j < 3; j++ {
		axis := fauxgl.V(axes.At(0, j), axes.At(1, j), axes.At(2, j))
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, p := range points {
			d := p.Dot(axis)
			lo = math.Min(lo, d)
			hi = math.Max(hi, d)
		}
		ext[j] = hi - lo
	}
	return fauxgl.V(ext[0], ext[1], ext[2]), true
}

// surfaceCentroid returns the area-weighted centroid of the triangles, or
// the vertex mean when the surface has no area.
func surfaceCentroid(mesh *fauxgl.Mesh, points []fauxgl.Vector) fauxgl.Vector {
	var sum fauxgl.Vector
	var total float64
	for _, t := range mesh.Triangles {
		a, b, c := t.V1.Position, t.V2.Position, t.V3.Position
		area := b.Sub(a).Cross(c.Sub(a)).Length() / 2
		sum = sum.Add(a.Add(b).Add(c).MulScalar(area / 3))
		total += area
	}
	if total > 0 {
		return sum.MulScalar(1 / total)
	}

	var mean fauxgl.Vector
	for _, p := range points {
		mean = mean.Add(p)
	}
	return mean.MulScalar(1 / float64(len(points)))
}
