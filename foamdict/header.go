// Package foamdict assembles the dictionary files read by the blockMesh,
// surfaceFeatureExtract and snappyHexMesh utilities.
package foamdict

import (
	"fmt"
	"strings"
)

const banner = `/*--------------------------------*- C++ -*----------------------------------*\
| =========                 |                                                 |
| \\      /  F ield         | OpenFOAM: The Open Source CFD Toolbox           |
|  \\    /   O peration     | Version:  4.0                                   |
|   \\  /    A nd           | Web:      www.OpenFOAM.org                      |
|    \\/     M anipulation  |                                                 |
\*---------------------------------------------------------------------------*/
`

const (
	separator = "// * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * * //\n"
	footer    = "// ************************************************************************* //\n"
)

// Document is one generated dictionary, named by its file name under system/
type Document struct {
	Name    string
	Content string
}

// writeHeader writes the banner and the FoamFile sub-dictionary for object
func writeHeader(sb *strings.Builder, object string) {
	sb.WriteString(banner)
	sb.WriteString("FoamFile\n{\n")
	fmt.Fprintf(sb, "    version     2.0;\n")
	fmt.Fprintf(sb, "    format      ascii;\n")
	fmt.Fprintf(sb, "    class       dictionary;\n")
	fmt.Fprintf(sb, "    object      %s;\n", object)
	sb.WriteString("}\n")
}
