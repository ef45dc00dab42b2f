// Package samples renders small solids into triangulated surfaces so that a
// geometry set can be produced without a CAD tool.
package samples

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/spf13/afero"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/meshprep/geometry"
)

// DefaultCells is the marching cubes resolution along the longest side of a part
const DefaultCells = 40

type Options struct {
	Cells     int
	Extension string
}

func DefaultOptions() Options {
	return Options{Cells: DefaultCells, Extension: geometry.DefaultSurfaceExtension}
}

// Part is one named solid, written to <Name><Extension>
type Part struct {
	Name  string
	Solid sdf.SDF3
}

// DefaultParts returns a 4x2x1 block centred on the origin and a cylindrical
// boss of radius 0.5 and height 2 standing at x=4
func DefaultParts() (parts []Part, err error) {
	var block, boss sdf.SDF3
	if block, err = sdf.Box3D(v3.Vec{X: 4, Y: 2, Z: 1}, 0); err != nil {
		return nil, fmt.Errorf("block: %w", err)
	}
	if boss, err = sdf.Cylinder3D(2, 0.5, 0); err != nil {
		return nil, fmt.Errorf("boss: %w", err)
	}
	boss = sdf.Transform3D(boss, sdf.Translate3d(v3.Vec{X: 4}))
	return []Part{
		{Name: "block", Solid: block},
		{Name: "boss", Solid: boss},
	}, nil
}

// Triangles tessellates s with uniform marching cubes
func Triangles(s sdf.SDF3, cells int) (tris []geometry.Triangle) {
	mesh := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))
	tris = make([]geometry.Triangle, 0, len(mesh))
	for _, tri := range mesh {
		var t geometry.Triangle
		for j := 0; j < 3; j++ {
			v := tri[j]
			t[j] = r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
		}
		tris = append(tris, t)
	}
	return
}

// Generate writes every part into dir as an ASCII STL whose solid name is the
// part name, creating dir when needed. It returns the written paths in part
// order.
func Generate(fs afero.Fs, dir string, parts []Part, opts Options) (paths []string, err error) {
	if opts.Cells <= 0 {
		opts.Cells = DefaultCells
	}
	if opts.Extension == "" {
		opts.Extension = geometry.DefaultSurfaceExtension
	}
	if err = fs.MkdirAll(dir, 0o755); err != nil {
		return
	}
	for _, p := range parts {
		tris := Triangles(p.Solid, opts.Cells)
		if len(tris) == 0 {
			return paths, fmt.Errorf("part %s: no triangles at %d cells", p.Name, opts.Cells)
		}
		var buf bytes.Buffer
		if err = geometry.WriteASCIISTL(&buf, p.Name, tris); err != nil {
			return
		}
		path := filepath.Join(dir, p.Name+opts.Extension)
		if err = afero.WriteFile(fs, path, buf.Bytes(), 0o644); err != nil {
			return
		}
		paths = append(paths, path)
	}
	return
}
