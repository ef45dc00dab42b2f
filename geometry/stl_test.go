package geometry

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const cubeCornerSTL = `solid corner
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 1 1 0
    endloop
  endfacet
  facet normal 0 0 1
    outer loop
      vertex 0.0e+00 0.0e+00 1.5e+00
      vertex -2.5 1.0 1.0
      vertex 1 1 1
    endloop
  endfacet
endsolid corner
`

func TestParseSTL_ASCII(t *testing.T) {
	name, tris, err := ParseSTL([]byte(cubeCornerSTL))
	require.NoError(t, err)
	assert.Equal(t, "corner", name)
	require.Len(t, tris, 2)
	assert.Equal(t, r3.Vec{X: 1, Y: 1, Z: 0}, tris[0][2])
	assert.Equal(t, r3.Vec{X: 0, Y: 0, Z: 1.5}, tris[1][0])
	assert.Equal(t, r3.Vec{X: -2.5, Y: 1, Z: 1}, tris[1][1])
}

func TestParseSTL_ASCIIErrors(t *testing.T) {
	{ // Not an STL file at all
		_, _, err := ParseSTL([]byte("ply\nformat ascii 1.0\n"))
		assert.Error(t, err)
	}
	{ // Short vertex line
		_, _, err := ParseSTL([]byte("solid x\nvertex 1 2\nendsolid x\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	}
	{ // Non numeric coordinate
		_, _, err := ParseSTL([]byte("solid x\nvertex 1 2 abc\nendsolid x\n"))
		assert.Error(t, err)
	}
	{ // Dangling vertices that do not close a triangle
		_, _, err := ParseSTL([]byte("solid x\nvertex 1 2 3\nvertex 1 2 4\nendsolid x\n"))
		assert.Error(t, err)
	}
	{ // Empty content
		_, _, err := ParseSTL(nil)
		assert.Error(t, err)
	}
}

func TestParseSTL_Binary(t *testing.T) {
	tris := []Triangle{
		{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
		{{X: -1, Y: 2, Z: 0.5}, {X: 0, Y: 3, Z: 2}, {X: 0, Y: 2, Z: 0}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteBinarySTL(&buf, tris))
	assert.Equal(t, 84+50*len(tris), buf.Len())
	assert.True(t, IsBinarySTL(buf.Bytes()))

	name, got, err := ParseSTL(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "", name)
	assert.Equal(t, tris, got)
}

func TestIsBinarySTL(t *testing.T) {
	assert.False(t, IsBinarySTL([]byte(cubeCornerSTL)))
	assert.False(t, IsBinarySTL([]byte("solid")))
	// A binary file whose header happens to begin with "solid"
	var buf bytes.Buffer
	require.NoError(t, WriteBinarySTL(&buf, []Triangle{{{X: 1}, {Y: 1}, {Z: 1}}}))
	data := buf.Bytes()
	copy(data, "solid fooled")
	assert.True(t, IsBinarySTL(data))
}

func TestWriteASCIISTL(t *testing.T) {
	tris := []Triangle{
		{{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 0, Y: 2, Z: 0}},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteASCIISTL(&buf, "plate", tris))
	assert.Contains(t, buf.String(), "facet normal 0 0 1\n")

	name, got, err := ParseSTL(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "plate", name)
	assert.Equal(t, tris, got)
}

func TestTriangleNormal(t *testing.T) {
	tri := Triangle{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 0, Z: 0}}
	assert.Equal(t, r3.Vec{X: 0, Y: 0, Z: -1}, tri.Normal())
	degenerate := Triangle{{X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 2, Y: 2, Z: 2}}
	assert.Equal(t, r3.Vec{}, degenerate.Normal())
}
