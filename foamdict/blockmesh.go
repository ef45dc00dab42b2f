package foamdict

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Cells is the number of background grid cells along x, y and z
type Cells [3]int

// DefaultCells is the coarse background resolution snappyHexMesh refines from
var DefaultCells = Cells{20, 20, 30}

var (
	// HexVertices references the box corners in r3.Box.Vertices order
	HexVertices = [8]int{0, 1, 2, 3, 4, 5, 6, 7}
	// BoundaryFaces lists the six hex faces of the allBoundary patch. The
	// winding of each quad sets the face orientation blockMesh sees.
	BoundaryFaces = [6][4]int{
		{3, 7, 6, 2},
		{0, 4, 7, 3},
		{2, 6, 5, 1},
		{1, 5, 4, 0},
		{0, 3, 2, 1},
		{4, 5, 6, 7},
	}
)

// BlockMesh returns a blockMeshDict with a single uniformly graded hex block
// filling box, split into cells. Coordinates are written with one decimal.
func BlockMesh(box r3.Box, cells Cells) string {
	var sb strings.Builder
	writeHeader(&sb, "blockMeshDict")
	sb.WriteString(separator)
	sb.WriteString("\nconvertToMeters 1;\n\n")

	// Bottom face counter clockwise from the minimum corner, then the top face
	sb.WriteString("vertices\n(\n")
	for _, v := range box.Vertices() {
		fmt.Fprintf(&sb, "    (%.1f %.1f %.1f)\n", v.X, v.Y, v.Z)
	}
	sb.WriteString(");\n\n")

	sb.WriteString("blocks\n(\n")
	fmt.Fprintf(&sb, "    hex %s (%d %d %d) simpleGrading (1 1 1)\n",
		tuple(HexVertices[:]), cells[0], cells[1], cells[2])
	sb.WriteString(");\n\n")

	sb.WriteString("edges\n(\n);\n\n")

	sb.WriteString("boundary\n(\n")
	sb.WriteString("    allBoundary\n    {\n")
	sb.WriteString("        type patch;\n")
	sb.WriteString("        faces\n        (\n")
	for _, f := range BoundaryFaces {
		fmt.Fprintf(&sb, "            %s\n", tuple(f[:]))
	}
	sb.WriteString("        );\n")
	sb.WriteString("    }\n);\n\n")
	sb.WriteString(footer)
	return sb.String()
}

func tuple(idx []int) string {
	parts := make([]string, len(idx))
	for i, n := range idx {
		parts[i] = fmt.Sprint(n)
	}
	return "(" + strings.Join(parts, " ") + ")"
}
