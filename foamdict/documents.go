package foamdict

import (
	"embed"
	"path"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/meshprep/geometry"
)

// File names of the generated dictionaries under system/
const (
	BlockMeshDictName             = "blockMeshDict"
	SurfaceFeatureExtractDictName = "surfaceFeatureExtractDict"
	SnappyHexMeshDictName         = "snappyHexMeshDict"
	MeshQualityDictName           = "meshQualityDict"
	ControlDictName               = "controlDict"
	FvSchemesName                 = "fvSchemes"
	FvSolutionName                = "fvSolution"
)

// StaticNames lists the dictionaries that do not depend on the geometry
var StaticNames = []string{MeshQualityDictName, ControlDictName, FvSchemesName, FvSolutionName}

//go:embed static
var staticFiles embed.FS

// Static returns the fixed dictionaries every case needs, in StaticNames order
func Static() (docs []Document) {
	for _, name := range StaticNames {
		body, err := staticFiles.ReadFile(path.Join("static", name))
		if err != nil {
			// The embedded set is fixed at build time
			panic(err)
		}
		docs = append(docs, Document{Name: name, Content: staticDocument(name, string(body))})
	}
	return
}

func staticDocument(object, body string) string {
	var sb strings.Builder
	writeHeader(&sb, object)
	sb.WriteString(separator)
	sb.WriteString("\n")
	sb.WriteString(body)
	sb.WriteString("\n")
	sb.WriteString(footer)
	return sb.String()
}

// Documents returns every system/ dictionary for one geometry set, with the
// background grid filling box
func Documents(set *geometry.Set, box r3.Box, cells Cells) []Document {
	docs := []Document{
		{Name: BlockMeshDictName, Content: BlockMesh(box, cells)},
		{Name: SurfaceFeatureExtractDictName, Content: SurfaceFeatureExtract(set)},
		{Name: SnappyHexMeshDictName, Content: SnappyHexMesh(set)},
	}
	return append(docs, Static()...)
}
