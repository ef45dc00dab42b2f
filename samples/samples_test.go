package samples

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/meshprep/geometry"
)

func TestGenerate(t *testing.T) {
	fs := afero.NewMemMapFs()
	parts, err := DefaultParts()
	require.NoError(t, err)
	paths, err := Generate(fs, "geometry/demo", parts, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"geometry/demo/block.stl", "geometry/demo/boss.stl"}, paths)

	set, err := geometry.ReadSet(fs, "geometry/demo", ".stl")
	require.NoError(t, err)
	assert.Equal(t, []string{"block", "boss"}, set.Names())
	for _, s := range set.Surfaces {
		assert.NotEmpty(t, s.Triangles, s.Name)
	}

	// Marching cubes stays within a cell of the exact surfaces
	tol := 0.25
	box := geometry.BoundingVolume(set, 0)
	assert.InDelta(t, -2.0, box.Min.X, tol)
	assert.InDelta(t, -1.0, box.Min.Y, tol)
	assert.InDelta(t, -1.0, box.Min.Z, tol)
	assert.InDelta(t, 4.5, box.Max.X, tol)
	assert.InDelta(t, 1.0, box.Max.Y, tol)
	assert.InDelta(t, 1.0, box.Max.Z, tol)

	boss := set.Surfaces[1].Bounds()
	assert.InDelta(t, 3.5, boss.Min.X, tol)
	assert.InDelta(t, -0.5, boss.Min.Y, tol)

	data, err := afero.ReadFile(fs, "geometry/demo/boss.stl")
	require.NoError(t, err)
	name, _, err := geometry.ParseSTL(data)
	require.NoError(t, err)
	assert.Equal(t, "boss", name)
}

func TestGenerate_Options(t *testing.T) {
	fs := afero.NewMemMapFs()
	parts, err := DefaultParts()
	require.NoError(t, err)
	coarse := Triangles(parts[0].Solid, 8)
	fine := Triangles(parts[0].Solid, 32)
	assert.NotEmpty(t, coarse)
	assert.Greater(t, len(fine), len(coarse))

	paths, err := Generate(fs, "out", parts[:1], Options{Extension: ".STL"})
	require.NoError(t, err)
	assert.Equal(t, []string{"out/block.STL"}, paths)
}
