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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/notargets/meshprep/InputParameters"
	"github.com/notargets/meshprep/mesher"
)

type SetGenerate struct {
	SetDir  string
	MeshDir string
}

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build the snappyHexMesh case for a single geometry set",
	Long: `
Writes the case for one geometry set, copying its surfaces into
constant/triSurface and the dictionaries into system.

meshprep generate -S geometry/manifold -M meshes/manifold`,
	Run: func(cmd *cobra.Command, args []string) {
		sg := &SetGenerate{
			SetDir:  viper.GetString("setDir"),
			MeshDir: viper.GetString("meshDir"),
		}
		if len(sg.SetDir) == 0 || len(sg.MeshDir) == 0 {
			logger.Fatal("must supply a geometry set (-S, --setDir) and a case directory (-M, --meshDir)")
		}
		ip, err := processInput(appFs, viper.GetViper())
		if err != nil {
			logger.Fatal("reading mesh parameters", zap.Error(err))
		}
		if err = RunGenerate(sg, ip); err != nil {
			logger.Fatal("generate failed", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(GenerateCmd)
	GenerateCmd.Flags().StringP("setDir", "S", "", "geometry set directory holding the surface files")
	GenerateCmd.Flags().StringP("meshDir", "M", "", "case directory to write")
	addParameterFlags(GenerateCmd)
}

func RunGenerate(sg *SetGenerate, ip *InputParameters.MeshParameters) error {
	m := mesher.NewMesher(appFs, logger, ip)
	if err := m.SetupSet(sg.SetDir, sg.MeshDir); err != nil {
		return fmt.Errorf("geometry set %s: %w", sg.SetDir, err)
	}
	return nil
}
