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
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/notargets/meshprep/InputParameters"
	"github.com/notargets/meshprep/mesher"
)

// RenameCmd represents the rename command
var RenameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Set the solid name of every surface file to its file name",
	Long: `
Walks the geometry directory recursively and rewrites the first and last
lines of each ASCII STL file to "solid <name>" and "endsolid <name>", where
<name> is the file name without its extension. Files are changed in place.

meshprep rename -G geometry`,
	Run: func(cmd *cobra.Command, args []string) {
		ip := InputParameters.NewMeshParameters()
		ip.SurfaceExtension = viper.GetString("surfaceExtension")
		m := mesher.NewMesher(appFs, logger, ip)
		renamed, err := m.RenameAll(viper.GetString("geometryDir"))
		if err != nil {
			logger.Fatal("rename failed", zap.Error(err))
		}
		logger.Info("rename complete", zap.Int("renamed", renamed))
	},
}

func init() {
	rootCmd.AddCommand(RenameCmd)
	RenameCmd.Flags().StringP("geometryDir", "G", "geometry", "directory searched recursively for surface files")
	RenameCmd.Flags().String("surfaceExtension", ".stl", "suffix of the surface files to rename")
}
