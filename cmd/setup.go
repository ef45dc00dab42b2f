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
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/notargets/meshprep/InputParameters"
	"github.com/notargets/meshprep/mesher"
)

type MeshSetup struct {
	GeometryDir string
	MeshesDir   string
}

// SetupCmd represents the setup command
var SetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Build a snappyHexMesh case for every geometry set",
	Long: `
Treats every directory below the geometry directory as a geometry set and
writes a case for it under the meshes directory:

  geometry/<set>/*.stl -> meshes/<set>/constant/triSurface/*.stl
                          meshes/<set>/system/*Dict

meshprep setup -G geometry -M meshes`,
	Run: func(cmd *cobra.Command, args []string) {
		ms := &MeshSetup{
			GeometryDir: viper.GetString("geometryDir"),
			MeshesDir:   viper.GetString("meshesDir"),
		}
		ip, err := processInput(appFs, viper.GetViper())
		if err != nil {
			logger.Fatal("reading mesh parameters", zap.Error(err))
		}
		if _, err = RunSetup(ms, ip); err != nil {
			logger.Fatal("setup failed", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(SetupCmd)
	SetupCmd.Flags().StringP("geometryDir", "G", "geometry", "directory holding one sub directory per geometry set")
	SetupCmd.Flags().StringP("meshesDir", "M", "meshes", "directory receiving one case per geometry set")
	addParameterFlags(SetupCmd)
}

func RunSetup(ms *MeshSetup, ip *InputParameters.MeshParameters) (rpt *mesher.Report, err error) {
	m := mesher.NewMesher(appFs, logger, ip)
	if rpt, err = m.SetupAll(ms.GeometryDir, ms.MeshesDir); err != nil {
		return
	}
	logger.Info("setup complete",
		zap.Int("generated", len(rpt.Generated)),
		zap.Strings("skipped", rpt.Skipped),
		zap.Strings("failed", rpt.FailedSets()))
	if failed := rpt.FailedSets(); len(failed) != 0 {
		logger.Warn("some geometry sets failed", zap.String("sets", strings.Join(failed, ", ")))
	}
	return
}
