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
	"go.uber.org/zap"

	"github.com/notargets/meshprep/samples"
)

// SampleCmd represents the sample command
var SampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a demonstration geometry set",
	Long: `
Renders a block and a cylindrical boss with marching cubes and writes them as
ASCII STL files, ready for "meshprep setup".

meshprep sample -G geometry/demo`,
	Run: func(cmd *cobra.Command, args []string) {
		dir, _ := cmd.Flags().GetString("geometryDir")
		opts := samples.DefaultOptions()
		opts.Cells, _ = cmd.Flags().GetInt("cells")
		paths, err := RunSample(dir, opts)
		if err != nil {
			logger.Fatal("sample failed", zap.Error(err))
		}
		logger.Info("wrote sample geometry", zap.Strings("files", paths))
	},
}

func init() {
	rootCmd.AddCommand(SampleCmd)
	SampleCmd.Flags().StringP("geometryDir", "G", "geometry/sample", "geometry set directory to write")
	SampleCmd.Flags().Int("cells", samples.DefaultCells, "marching cubes cells along the longest side of each part")
}

func RunSample(dir string, opts samples.Options) (paths []string, err error) {
	var parts []samples.Part
	if parts, err = samples.DefaultParts(); err != nil {
		return
	}
	return samples.Generate(appFs, dir, parts, opts)
}
