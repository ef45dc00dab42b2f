package geometry

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultSurfaceExtension is the file extension of surface geometry files
const DefaultSurfaceExtension = ".stl"

// Surface is one triangulated surface read from a geometry file
type Surface struct {
	Name      string // File name without its extension
	FileName  string
	Path      string
	Triangles []Triangle
}

// Set is a named collection of surfaces living in one directory, meshed as
// a single target. Surfaces are ordered by file name.
type Set struct {
	Name     string
	Dir      string
	Surfaces []*Surface
}

// ReadSurface reads and decodes one STL file
func ReadSurface(fs afero.Fs, path string) (s *Surface, err error) {
	var data []byte
	if data, err = afero.ReadFile(fs, path); err != nil {
		return nil, err
	}
	_, tris, err := ParseSTL(data)
	if err != nil {
		return nil, fmt.Errorf("reading surface %s: %w", path, err)
	}
	if len(tris) == 0 {
		return nil, fmt.Errorf("reading surface %s: no triangles", path)
	}
	fileName := filepath.Base(path)
	s = &Surface{
		Name:      strings.TrimSuffix(fileName, filepath.Ext(fileName)),
		FileName:  fileName,
		Path:      path,
		Triangles: tris,
	}
	return
}

// ReadSet reads every file directly inside dir whose name ends in ext.
// Subdirectories are not searched. A missing directory, or one holding no
// matching files, yields a *NotFoundError.
func ReadSet(fs afero.Fs, dir, ext string) (set *Set, err error) {
	var (
		isDir bool
		infos []os.FileInfo
	)
	if isDir, err = afero.IsDir(fs, dir); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if !isDir {
		return nil, &NotFoundError{Path: dir, Reason: "geometry set directory does not exist"}
	}
	// afero.ReadDir sorts by name, which fixes the surface order
	if infos, err = afero.ReadDir(fs, dir); err != nil {
		return nil, err
	}
	set = &Set{Name: filepath.Base(dir), Dir: dir}
	for _, fi := range infos {
		if fi.IsDir() || !strings.HasSuffix(fi.Name(), ext) {
			continue
		}
		var s *Surface
		if s, err = ReadSurface(fs, filepath.Join(dir, fi.Name())); err != nil {
			return nil, err
		}
		set.Surfaces = append(set.Surfaces, s)
	}
	if len(set.Surfaces) == 0 {
		return nil, &NotFoundError{Path: dir, Reason: fmt.Sprintf("no %s files found", ext)}
	}
	return
}

// Names returns the surface names (file stems) in set order
func (set *Set) Names() []string {
	return lo.Map(set.Surfaces, func(s *Surface, _ int) string { return s.Name })
}

// FileNames returns the surface file names in set order
func (set *Set) FileNames() []string {
	return lo.Map(set.Surfaces, func(s *Surface, _ int) string { return s.FileName })
}

// Bounds returns the tight axis aligned box around every vertex of s
func (s *Surface) Bounds() (box r3.Box) {
	box = emptyBox()
	for _, tri := range s.Triangles {
		for _, v := range tri {
			box = includePoint(box, v)
		}
	}
	return
}

// BoundingVolume folds the vertices of every surface in set into one axis
// aligned box, then grows it by padding on all six sides. The fold is order
// independent. set must hold at least one surface.
func BoundingVolume(set *Set, padding float64) r3.Box {
	box := emptyBox()
	for _, s := range set.Surfaces {
		box = merge(box, s.Bounds())
	}
	return Pad(box, padding)
}

// Pad moves every minimum component down and every maximum component up by padding
func Pad(box r3.Box, padding float64) r3.Box {
	p := r3.Vec{X: padding, Y: padding, Z: padding}
	return r3.Box{Min: r3.Sub(box.Min, p), Max: r3.Add(box.Max, p)}
}

func emptyBox() r3.Box {
	inf := math.Inf(1)
	return r3.Box{
		Min: r3.Vec{X: inf, Y: inf, Z: inf},
		Max: r3.Vec{X: -inf, Y: -inf, Z: -inf},
	}
}

func includePoint(box r3.Box, v r3.Vec) r3.Box {
	return merge(box, r3.Box{Min: v, Max: v})
}

// merge is r3.Box.Union without its empty-box shortcut: a flat surface has
// zero volume but still bounds the domain.
func merge(a, b r3.Box) r3.Box {
	return r3.Box{
		Min: r3.Vec{X: math.Min(a.Min.X, b.Min.X), Y: math.Min(a.Min.Y, b.Min.Y), Z: math.Min(a.Min.Z, b.Min.Z)},
		Max: r3.Vec{X: math.Max(a.Max.X, b.Max.X), Y: math.Max(a.Max.Y, b.Max.Y), Z: math.Max(a.Max.Z, b.Max.Z)},
	}
}
