package foamdict

import (
	"fmt"
	"strings"

	"github.com/notargets/meshprep/geometry"
)

const (
	// FeatureLevel is the explicit feature edge refinement level
	FeatureLevel = 0
	// SurfaceLevelMin and SurfaceLevelMax bound the surface refinement level
	SurfaceLevelMin = 0
	SurfaceLevelMax = 0
)

const snappySteps = `castellatedMesh true;
snap            true;
addLayers       false;

`

const castellatedLimits = `castellatedMeshControls
{
    // Refinement parameters
    // ~~~~~~~~~~~~~~~~~~~~~

    maxLocalCells 100000;
    maxGlobalCells 2000000;
    minRefinementCells 0;
    nCellsBetweenLevels 10;

    // Explicit feature edge refinement
    // ~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~
`

const castellatedTail = `
    resolveFeatureAngle 30;

    // Region-wise refinement
    // ~~~~~~~~~~~~~~~~~~~~~~
    refinementRegions
    {
    }

    // Mesh selection
    // ~~~~~~~~~~~~~~
    locationInMesh (0 0 0);
    allowFreeStandingZoneFaces true;
}

`

const snappyControls = `// Settings for the snapping.
snapControls
{
    nSmoothPatch 3;
    tolerance 1.0;
    nSolveIter 300;
    nRelaxIter 5;

    // Feature snapping
    nFeatureSnapIter 10;
    implicitFeatureSnap false;
    explicitFeatureSnap true;
    multiRegionFeatureSnap true;
}

// Settings for the layer addition.
addLayersControls
{
    relativeSizes true;

    layers
    {
        "flange_.*"
        {
            nSurfaceLayers 1;
        }
    }

    expansionRatio 1.0;
    finalLayerThickness 0.3;
    minThickness 0.25;
    nGrow 0;

    // Advanced settings
    featureAngle 30;
    nRelaxIter 5;
    nSmoothSurfaceNormals 1;
    nSmoothNormals 3;
    nSmoothThickness 10;
    maxFaceThicknessRatio 0.5;
    maxThicknessToMedialRatio 0.3;
    minMedianAxisAngle 90;
    nBufferCellsNoExtrude 0;
    nLayerIter 50;
    nRelaxedIter 20;
}

// Generic mesh quality settings
meshQualityControls
{
    #include "meshQualityDict"

    relaxed
    {
        maxNonOrtho 75;
    }

    nSmoothScale 4;
    errorReduction 0.75;
}

// Advanced
writeFlags
(
    scalarLevels
    layerSets
    layerFields
);

mergeTolerance 1E-6;

`

// SnappyHexMesh returns a snappyHexMeshDict declaring every surface of set
// as a triSurfaceMesh geometry, an explicit feature edge source and a
// refinement surface. Everything outside those three regions is fixed.
func SnappyHexMesh(set *geometry.Set) string {
	var sb strings.Builder
	writeHeader(&sb, "snappyHexMeshDict")
	sb.WriteString("\n")
	sb.WriteString(separator)
	sb.WriteString("\n")
	sb.WriteString(snappySteps)

	sb.WriteString("geometry\n{\n")
	for _, s := range set.Surfaces {
		fmt.Fprintf(&sb, "    %s\n    {\n", s.FileName)
		fmt.Fprintf(&sb, "        type triSurfaceMesh;\n")
		fmt.Fprintf(&sb, "        name %s;\n", s.Name)
		sb.WriteString("    }\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("// Settings for the castellatedMesh generation.\n")
	sb.WriteString(castellatedLimits)
	sb.WriteString("    features\n    (\n")
	for _, s := range set.Surfaces {
		sb.WriteString("        {\n")
		fmt.Fprintf(&sb, "            file \"%s.eMesh\";\n", s.Name)
		fmt.Fprintf(&sb, "            level %d;\n", FeatureLevel)
		sb.WriteString("        }\n")
	}
	sb.WriteString("    );\n\n")

	sb.WriteString("    // Surface based refinement\n")
	sb.WriteString("    // ~~~~~~~~~~~~~~~~~~~~~~~~\n")
	sb.WriteString("    refinementSurfaces\n    {\n")
	for _, s := range set.Surfaces {
		fmt.Fprintf(&sb, "        %s\n        {\n", s.Name)
		sb.WriteString("            // Surface-wise min and max refinement level\n")
		fmt.Fprintf(&sb, "            level (%d %d);\n", SurfaceLevelMin, SurfaceLevelMax)
		sb.WriteString("        }\n")
	}
	sb.WriteString("    }\n")
	sb.WriteString(castellatedTail)

	sb.WriteString(snappyControls)
	sb.WriteString(footer)
	return sb.String()
}
