package assemble

import (
	"os"
	"path/filepath"

	gerrors "git.home.luguber.info/inful/guidegen/internal/errors"
)

// WriteFileAtomic writes data to path via a temp file in the same directory
// followed by a rename, so a failed run never leaves a partial output file
// in place.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return gerrors.WriteError(err, dir)
	}

	tmp, err := os.CreateTemp(dir, ".guidegen-*.tmp")
	if err != nil {
		return gerrors.WriteError(err, path)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return gerrors.WriteError(err, path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return gerrors.WriteError(err, path)
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return gerrors.WriteError(err, path)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return gerrors.WriteError(err, path)
	}
	return nil
}
