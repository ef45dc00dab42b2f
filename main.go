package main

import "github.com/notargets/meshprep/cmd"

func main() {
	cmd.Execute()
}
