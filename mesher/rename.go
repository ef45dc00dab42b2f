package mesher

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/notargets/meshprep/geometry"
)

// RenameAll rewrites the solid name of every surface file below root,
// recursively, to the file's stem. Files that cannot be renamed are logged
// and left alone. It returns the number of files rewritten.
func (m *Mesher) RenameAll(root string) (renamed int, err error) {
	var exists bool
	if exists, err = afero.DirExists(m.Fs, root); err != nil {
		return
	}
	if !exists {
		return 0, &geometry.NotFoundError{Path: root, Reason: "geometry directory does not exist"}
	}
	ext := m.Params.SurfaceExtension
	err = afero.Walk(m.Fs, root, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.IsDir() || !strings.HasSuffix(info.Name(), ext) {
			return nil
		}
		log := m.Logger.With(zap.String("path", path))
		data, readErr := afero.ReadFile(m.Fs, path)
		if readErr != nil {
			log.Warn("skipping surface", zap.Error(readErr))
			return nil
		}
		name := strings.TrimSuffix(info.Name(), filepath.Ext(info.Name()))
		out, renameErr := geometry.RenameSolid(data, name)
		if renameErr != nil {
			log.Warn("skipping surface", zap.Error(renameErr))
			return nil
		}
		if writeErr := afero.WriteFile(m.Fs, path, out, info.Mode().Perm()); writeErr != nil {
			log.Warn("skipping surface", zap.Error(writeErr))
			return nil
		}
		log.Info("renamed solid", zap.String("solid", name))
		renamed++
		return nil
	})
	return
}
