package foamdict

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/notargets/meshprep/geometry"
)

// IncludedAngle is the feature angle, in degrees, used for every surface
const IncludedAngle = 180

// SurfaceFeatureExtract returns a surfaceFeatureExtractDict with one
// extractFromSurface entry per surface, keyed by file name, in set order
func SurfaceFeatureExtract(set *geometry.Set) string {
	var sb strings.Builder
	writeHeader(&sb, "surfaceFeatureExtractDict")
	sb.WriteString(separator)
	sb.WriteString("\n")
	blocks := lo.Map(set.Surfaces, func(s *geometry.Surface, _ int) string {
		return featureBlock(s.FileName)
	})
	sb.WriteString(strings.Join(blocks, "\n\n"))
	sb.WriteString("\n\n")
	sb.WriteString(footer)
	return sb.String()
}

func featureBlock(fileName string) string {
	return fmt.Sprintf(`%s
{
    extractionMethod    extractFromSurface;

    extractFromSurfaceCoeffs
    {
        includedAngle   %d;
    }

    writeObj            yes;
}`, fileName, IncludedAngle)
}
