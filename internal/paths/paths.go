// Package paths centralizes the generator's output locations and
// filesystem conventions.
package paths

import (
	"os"
	"path/filepath"
)

const (
	// AppIconSetDir is the asset-catalog directory the generator fills,
	// relative to the working directory.
	AppIconSetDir = "FileLocker/Assets.xcassets/AppIcon.appiconset"

	// ManifestFileName is the catalog manifest Xcode reads beside the images.
	ManifestFileName = "Contents.json"

	DirPerm  = 0755
	FilePerm = 0644
)

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
