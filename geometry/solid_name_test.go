package geometry

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenameSolid(t *testing.T) {
	{ // Matching names are rewritten in place
		out, err := RenameSolid([]byte(cubeCornerSTL), "corner")
		require.NoError(t, err)
		assert.Equal(t, cubeCornerSTL, string(out))
	}
	{ // The declared name is always overwritten, even when it differs from the file name
		out, err := RenameSolid([]byte(cubeCornerSTL), "flange")
		require.NoError(t, err)
		name, tris, err := ParseSTL(out)
		require.NoError(t, err)
		assert.Equal(t, "flange", name)
		assert.Len(t, tris, 2)
		assert.True(t, bytes.HasSuffix(out, []byte("  endfacet\nendsolid flange\n")))
	}
	{ // Exported files often carry a tool banner as the solid name
		in := "solid Exported from CAD 2024\nvertex 0 0 0\nvertex 1 0 0\nvertex 0 1 0\nendsolid Exported from CAD 2024"
		out, err := RenameSolid([]byte(in), "part")
		require.NoError(t, err)
		assert.Equal(t, "solid part\nvertex 0 0 0\nvertex 1 0 0\nvertex 0 1 0\nendsolid part\n", string(out))
	}
	{ // The last line is left alone unless it closes the solid
		in := "solid a\nvertex 0 0 0\n"
		out, err := RenameSolid([]byte(in), "b")
		require.NoError(t, err)
		assert.Equal(t, "solid b\nvertex 0 0 0\n", string(out))
	}
	{ // Single line file
		out, err := RenameSolid([]byte("solid a"), "b")
		require.NoError(t, err)
		assert.Equal(t, "solid b\n", string(out))
	}
	{ // Empty file
		out, err := RenameSolid(nil, "b")
		require.NoError(t, err)
		assert.Empty(t, out)
	}
}

func TestRenameSolid_Binary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBinarySTL(&buf, []Triangle{{{X: 1}, {Y: 1}, {Z: 1}}}))
	in := buf.Bytes()
	out, err := RenameSolid(in, "b")
	assert.True(t, errors.Is(err, ErrBinarySTL))
	assert.Equal(t, in, out)
}
