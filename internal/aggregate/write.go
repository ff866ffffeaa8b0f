package aggregate

import (
	"os"
	"path/filepath"
)

// Write replaces outputPath with the serialized document. The content is
// staged in a temp file beside the target and renamed into place, so the
// target is either the old file or the complete new one. An existing
// target keeps its permission bits; a new one is created 0644.
func Write(doc *Document, outputPath string) (int64, error) {
	dir := filepath.Dir(outputPath)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(outputPath)+".*.tmp")
	if err != nil {
		return 0, &WriteError{Path: outputPath, Err: err}
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	n, err := tmp.Write(doc.Bytes())
	if err != nil {
		return 0, &WriteError{Path: outputPath, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		return 0, &WriteError{Path: outputPath, Err: err}
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(outputPath); err == nil && info.Mode().IsRegular() {
		mode = info.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		return 0, &WriteError{Path: outputPath, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return 0, &WriteError{Path: outputPath, Err: err}
	}
	if err := os.Rename(tmpName, outputPath); err != nil {
		return 0, &WriteError{Path: outputPath, Err: err}
	}
	committed = true

	return int64(n), nil
}
