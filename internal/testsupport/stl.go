// Package testsupport provides STL fixtures for tests.
package testsupport

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// Triangle is three vertices in counter-clockwise order.
type Triangle [3][3]float32

// CubeTriangles returns the 12 outward-facing triangles of an axis-aligned
// cube with the given edge length and minimum corner at origin.
func CubeTriangles(edge float32, origin [3]float32) []Triangle {
	o := origin
	p := func(x, y, z float32) [3]float32 {
		return [3]float32{o[0] + x*edge, o[1] + y*edge, o[2] + z*edge}
	}
	v := [8][3]float32{
		p(0, 0, 0), p(1, 0, 0), p(1, 1, 0), p(0, 1, 0),
		p(0, 0, 1), p(1, 0, 1), p(1, 1, 1), p(0, 1, 1),
	}
	quads := [6][4]int{
		{0, 3, 2, 1}, // bottom
		{4, 5, 6, 7}, // top
		{0, 1, 5, 4}, // front
		{2, 3, 7, 6}, // back
		{1, 2, 6, 5}, // right
		{3, 0, 4, 7}, // left
	}
	tris := make([]Triangle, 0, 12)
	for _, q := range quads {
		tris = append(tris,
			Triangle{v[q[0]], v[q[1]], v[q[2]]},
			Triangle{v[q[0]], v[q[2]], v[q[3]]},
		)
	}
	return tris
}

// BinarySTL encodes triangles as a binary STL file.
func BinarySTL(tris []Triangle) []byte {
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(tris))) //nolint:errcheck // bytes.Buffer never fails
	for _, t := range tris {
		n := normal(t)
		_ = binary.Write(&buf, binary.LittleEndian, n) //nolint:errcheck // bytes.Buffer never fails
		for _, vert := range t {
			_ = binary.Write(&buf, binary.LittleEndian, vert) //nolint:errcheck // bytes.Buffer never fails
		}
		_ = binary.Write(&buf, binary.LittleEndian, uint16(0)) //nolint:errcheck // bytes.Buffer never fails
	}
	return buf.Bytes()
}

func normal(t Triangle) [3]float32 {
	ux, uy, uz := t[1][0]-t[0][0], t[1][1]-t[0][1], t[1][2]-t[0][2]
	vx, vy, vz := t[2][0]-t[0][0], t[2][1]-t[0][1], t[2][2]-t[0][2]
	nx, ny, nz := uy*vz-uz*vy, uz*vx-ux*vz, ux*vy-uy*vx
	l := float32(math.Sqrt(float64(nx*nx + ny*ny + nz*nz)))
	if l == 0 {
		return [3]float32{}
	}
	return [3]float32{nx / l, ny / l, nz / l}
}

// WriteCube writes a binary STL cube to root/name, creating parent
// directories, and returns the file path.
func WriteCube(t *testing.T, root, name string, edge float32) string {
	t.Helper()
	return WriteFile(t, root, name, BinarySTL(CubeTriangles(edge, [3]float32{})))
}

// WriteCorrupt writes a file that no STL loader can read.
func WriteCorrupt(t *testing.T, root, name string) string {
	t.Helper()
	return WriteFile(t, root, name, []byte("not a mesh"))
}

// WriteFile writes data to root/name, creating parent directories.
func WriteFile(t *testing.T, root, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}
	return path
}
