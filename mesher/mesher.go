// Package mesher lays out snappyHexMesh case directories: one case per
// geometry set, holding copies of the surfaces and the generated dictionaries.
package mesher

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/notargets/meshprep/InputParameters"
	"github.com/notargets/meshprep/foamdict"
	"github.com/notargets/meshprep/geometry"
)

// Case layout below each meshes/<set> directory
const (
	ConstantDir   = "constant"
	TriSurfaceDir = "triSurface"
	SystemDir     = "system"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

type Mesher struct {
	Fs     afero.Fs
	Logger *zap.Logger
	Params *InputParameters.MeshParameters
}

// Report summarises a run over a geometry root
type Report struct {
	Generated []string         // Sets with a complete case directory
	Skipped   []string         // Sets without surface files
	Failed    map[string]error // Sets that failed while ContinueOnError was set
}

func NewMesher(fs afero.Fs, logger *zap.Logger, params *InputParameters.MeshParameters) *Mesher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if params == nil {
		params = InputParameters.NewMeshParameters()
	}
	return &Mesher{Fs: fs, Logger: logger, Params: params}
}

// SetupSet builds the case directory meshDir for the geometry set in setDir.
// The set is read before anything is written, so a set without surfaces
// leaves no trace in meshDir.
func (m *Mesher) SetupSet(setDir, meshDir string) (err error) {
	var set *geometry.Set
	if set, err = geometry.ReadSet(m.Fs, setDir, m.Params.SurfaceExtension); err != nil {
		return
	}
	log := m.Logger.With(zap.String("set", set.Name))
	log.Info("processing geometry set",
		zap.String("dir", setDir), zap.Int("surfaces", len(set.Surfaces)))

	var (
		triDir = filepath.Join(meshDir, ConstantDir, TriSurfaceDir)
		sysDir = filepath.Join(meshDir, SystemDir)
	)
	for _, dir := range []string{triDir, sysDir} {
		if err = m.Fs.MkdirAll(dir, dirPerm); err != nil {
			return
		}
	}

	for _, s := range set.Surfaces {
		dst := filepath.Join(triDir, s.FileName)
		if err = m.copySurface(s, dst); err != nil {
			return
		}
		log.Info("copied surface", zap.String("file", s.FileName), zap.String("path", dst))
	}

	box := geometry.BoundingVolume(set, m.Params.Padding)
	log.Debug("bounding volume",
		zap.Float64s("min", []float64{box.Min.X, box.Min.Y, box.Min.Z}),
		zap.Float64s("max", []float64{box.Max.X, box.Max.Y, box.Max.Z}),
		zap.Float64("padding", m.Params.Padding))

	for _, doc := range foamdict.Documents(set, box, foamdict.Cells(m.Params.Cells)) {
		path := filepath.Join(sysDir, doc.Name)
		if err = afero.WriteFile(m.Fs, path, []byte(doc.Content), filePerm); err != nil {
			return
		}
		log.Info("wrote dictionary", zap.String("file", doc.Name), zap.String("path", path))
	}
	return
}

// copySurface copies the surface file to dst keeping its mode and
// modification time, normalising the solid name when RenameSolids is set
func (m *Mesher) copySurface(s *geometry.Surface, dst string) (err error) {
	var (
		info os.FileInfo
		data []byte
	)
	if info, err = m.Fs.Stat(s.Path); err != nil {
		return
	}
	if data, err = afero.ReadFile(m.Fs, s.Path); err != nil {
		return
	}
	if m.Params.RenameSolids {
		var renameErr error
		if data, renameErr = geometry.RenameSolid(data, s.Name); renameErr != nil {
			m.Logger.Warn("copying surface unchanged",
				zap.String("file", s.FileName), zap.Error(renameErr))
		}
	}
	if err = afero.WriteFile(m.Fs, dst, data, info.Mode().Perm()); err != nil {
		return
	}
	return m.Fs.Chtimes(dst, info.ModTime(), info.ModTime())
}

// SetupAll treats every directory directly under geometryRoot as a geometry
// set and builds its case under meshesRoot/<set>. Sets without surfaces are
// logged and skipped. Any other failure stops the run unless ContinueOnError
// is set, in which case it is logged and recorded in the report.
func (m *Mesher) SetupAll(geometryRoot, meshesRoot string) (rpt *Report, err error) {
	var (
		isDir bool
		infos []os.FileInfo
	)
	if isDir, err = afero.IsDir(m.Fs, geometryRoot); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if !isDir {
		return nil, &geometry.NotFoundError{Path: geometryRoot, Reason: "geometry directory does not exist"}
	}
	if err = m.Fs.MkdirAll(meshesRoot, dirPerm); err != nil {
		return
	}
	if infos, err = afero.ReadDir(m.Fs, geometryRoot); err != nil {
		return
	}
	rpt = &Report{Failed: make(map[string]error)}
	for _, fi := range infos {
		if !fi.IsDir() {
			continue
		}
		name := fi.Name()
		setErr := m.SetupSet(filepath.Join(geometryRoot, name), filepath.Join(meshesRoot, name))
		switch {
		case setErr == nil:
			rpt.Generated = append(rpt.Generated, name)
		case errors.Is(setErr, geometry.ErrNotFound):
			m.Logger.Warn("skipping geometry set", zap.String("set", name), zap.Error(setErr))
			rpt.Skipped = append(rpt.Skipped, name)
		case m.Params.ContinueOnError:
			m.Logger.Error("geometry set failed", zap.String("set", name), zap.Error(setErr))
			rpt.Failed[name] = setErr
		default:
			return rpt, setErr
		}
	}
	return
}

// FailedSets returns the names of the failed sets in sorted order
func (rpt *Report) FailedSets() []string {
	names := make([]string, 0, len(rpt.Failed))
	for name := range rpt.Failed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
