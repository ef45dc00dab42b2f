/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/meshprep/InputParameters"
)

const exampleFile = `
########################################
Title: "Manifold"
Padding: 1.0
Cells: [20, 20, 30]
SurfaceExtension: .stl
RenameSolids: false
ContinueOnError: false
########################################
`

func addParameterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for mesh parameters like:"+exampleFile)
	cmd.Flags().Float64("padding", 1.0, "margin added around the geometry on every side")
	cmd.Flags().IntSlice("cells", []int{20, 20, 30}, "background grid cells along x,y,z")
	cmd.Flags().String("surfaceExtension", ".stl", "suffix of the surface files in a geometry set")
	cmd.Flags().Bool("renameSolids", false, "rewrite the solid name of each copied surface to its file name")
	cmd.Flags().Bool("continueOnError", false, "keep going past a geometry set that fails")
}

// processInput starts from the defaults, overlays the parameters file when
// one is named, then anything set by flag, environment or config file
func processInput(fs afero.Fs, v *viper.Viper) (ip *InputParameters.MeshParameters, err error) {
	ip = InputParameters.NewMeshParameters()
	if icFile := v.GetString("inputParametersFile"); len(icFile) != 0 {
		var data []byte
		if data, err = afero.ReadFile(fs, icFile); err != nil {
			return nil, err
		}
		if err = ip.Parse(data); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", icFile, err)
		}
	}
	if v.IsSet("padding") {
		ip.Padding = v.GetFloat64("padding")
	}
	if v.IsSet("cells") {
		if ip.Cells, err = cellCounts(v.Get("cells")); err != nil {
			return nil, err
		}
	}
	if v.IsSet("surfaceExtension") {
		ip.SurfaceExtension = v.GetString("surfaceExtension")
	}
	if v.IsSet("renameSolids") {
		ip.RenameSolids = v.GetBool("renameSolids")
	}
	if v.IsSet("continueOnError") {
		ip.ContinueOnError = v.GetBool("continueOnError")
	}
	return
}

// cellCounts accepts a slice from flags or config, or a "20,20,30" string
// from the environment
func cellCounts(value interface{}) (cells [3]int, err error) {
	if s, ok := value.(string); ok {
		value = strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	}
	var counts []int
	if counts, err = cast.ToIntSliceE(value); err != nil {
		return cells, fmt.Errorf("cells: %w", err)
	}
	if len(counts) != 3 {
		return cells, fmt.Errorf("cells: need 3 counts for x,y,z, got %v", counts)
	}
	copy(cells[:], counts)
	return
}
