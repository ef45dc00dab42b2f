package foamdict

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// section returns the lines between "name\n(" and the matching ");"
func section(t *testing.T, doc, name string) []string {
	t.Helper()
	start := strings.Index(doc, "\n"+name+"\n(\n")
	require.GreaterOrEqual(t, start, 0, "section %s missing", name)
	rest := doc[start+len(name)+4:]
	if strings.HasPrefix(rest, ");\n") {
		return nil
	}
	end := strings.Index(rest, "\n);\n")
	require.GreaterOrEqual(t, end, 0, "section %s not closed", name)
	return strings.Split(rest[:end], "\n")
}

func TestBlockMesh(t *testing.T) {
	box := r3.Box{Min: r3.Vec{X: -2, Y: -1, Z: -1}, Max: r3.Vec{X: 2, Y: 4, Z: 3}}
	doc := BlockMesh(box, DefaultCells)

	assert.True(t, strings.HasPrefix(doc, "/*-----"))
	assert.Contains(t, doc, "    object      blockMeshDict;\n")
	assert.Contains(t, doc, "convertToMeters 1;\n")
	assert.Equal(t, []string{
		"    (-2.0 -1.0 -1.0)",
		"    (2.0 -1.0 -1.0)",
		"    (2.0 4.0 -1.0)",
		"    (-2.0 4.0 -1.0)",
		"    (-2.0 -1.0 3.0)",
		"    (2.0 -1.0 3.0)",
		"    (2.0 4.0 3.0)",
		"    (-2.0 4.0 3.0)",
	}, section(t, doc, "vertices"))
	assert.Equal(t, []string{
		"    hex (0 1 2 3 4 5 6 7) (20 20 30) simpleGrading (1 1 1)",
	}, section(t, doc, "blocks"))
	assert.Nil(t, section(t, doc, "edges"))
	assert.Contains(t, doc, `
    allBoundary
    {
        type patch;
        faces
        (
            (3 7 6 2)
            (0 4 7 3)
            (2 6 5 1)
            (1 5 4 0)
            (0 3 2 1)
            (4 5 6 7)
        );
    }
`)
	assert.True(t, strings.HasSuffix(doc, footer))
}

func TestBlockMesh_Shape(t *testing.T) {
	var (
		vertexLine = regexp.MustCompile(`(?m)^    \(-?\d+\.\d -?\d+\.\d -?\d+\.\d\)$`)
		hexLine    = regexp.MustCompile(`(?m)^    hex \(`)
		faceLine   = regexp.MustCompile(`(?m)^            \(\d \d \d \d\)$`)
	)
	boxes := []r3.Box{
		{Min: r3.Vec{X: 0, Y: 0, Z: 0}, Max: r3.Vec{X: 1, Y: 1, Z: 1}},
		{Min: r3.Vec{X: -1234.56, Y: 0.04, Z: -0.06}, Max: r3.Vec{X: 7.25, Y: 9.95, Z: 1e3}},
		{Min: r3.Vec{X: 3, Y: 3, Z: 3}, Max: r3.Vec{X: 3, Y: 3, Z: 3}},
	}
	cells := []Cells{{1, 1, 1}, {20, 20, 30}, {0, -4, 100000}}
	for _, box := range boxes {
		for _, c := range cells {
			doc := BlockMesh(box, c)
			assert.Len(t, vertexLine.FindAllString(doc, -1), 8)
			assert.Len(t, hexLine.FindAllString(doc, -1), 1)
			assert.Len(t, faceLine.FindAllString(doc, -1), 6)
		}
	}
}

func TestBlockMesh_Rounding(t *testing.T) {
	box := r3.Box{Min: r3.Vec{X: -0.04, Y: 0.25, Z: 1.96}, Max: r3.Vec{X: 0.05, Y: 10.75, Z: 2.04}}
	lines := section(t, BlockMesh(box, DefaultCells), "vertices")
	require.Len(t, lines, 8)
	assert.Equal(t, "    (-0.0 0.2 2.0)", lines[0])
	assert.Equal(t, "    (0.1 10.8 2.0)", lines[6])
}

func TestBlockMesh_Idempotent(t *testing.T) {
	box := r3.Box{Min: r3.Vec{X: -3.3, Y: -1, Z: 0.5}, Max: r3.Vec{X: 8, Y: 4.4, Z: 3}}
	assert.Equal(t, BlockMesh(box, Cells{8, 9, 10}), BlockMesh(box, Cells{8, 9, 10}))
}
