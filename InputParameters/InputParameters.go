package InputParameters

import (
	"fmt"
	"io"
	"os"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file. ghodss/yaml decodes through
// encoding/json, so the json tags name the YAML keys.
type MeshParameters struct {
	Title            string  `json:"Title"`
	Padding          float64 `json:"Padding"`          // Margin added around the geometry on every side
	Cells            [3]int  `json:"Cells"`            // Background grid cells along x, y, z
	SurfaceExtension string  `json:"SurfaceExtension"` // Suffix of the surface files in a geometry set
	RenameSolids     bool    `json:"RenameSolids"`     // Rewrite solid names of the copied surfaces
	ContinueOnError  bool    `json:"ContinueOnError"`  // Keep going past a geometry set that fails
}

func NewMeshParameters() *MeshParameters {
	return &MeshParameters{
		Padding:          1.0,
		Cells:            [3]int{20, 20, 30},
		SurfaceExtension: ".stl",
	}
}

// Parse overlays the keys present in data onto ip
func (ip *MeshParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *MeshParameters) Print() {
	ip.Fprint(os.Stdout)
}

func (ip *MeshParameters) Fprint(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "%8.5f\t\t= Padding\n", ip.Padding)
	fmt.Fprintf(w, "%v\t\t= Cells\n", ip.Cells)
	fmt.Fprintf(w, "[%s]\t\t\t= Surface Extension\n", ip.SurfaceExtension)
	fmt.Fprintf(w, "[%t]\t\t\t= Rename Solids\n", ip.RenameSolids)
	fmt.Fprintf(w, "[%t]\t\t\t= Continue On Error\n", ip.ContinueOnError)
}
