// Package iconset writes generated icons and their asset-catalog manifest
// into an .appiconset directory.
package iconset

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"

	"github.com/filelocker/genicons/internal/paths"
)

// Entry names one icon variant: a base point size and an integer scale
// factor (2 produces the @2x asset).
type Entry struct {
	Size  int
	Scale int
}

// FileName returns the asset file name for a size/scale pair, e.g.
// app_icon_512x512.png or app_icon_512x512@2x.png. Plain 1x assets carry
// no scale suffix.
func FileName(size, scale int) string {
	name := fmt.Sprintf("app_icon_%dx%d", size, size)
	if scale > 1 {
		name += fmt.Sprintf("@%dx", scale)
	}
	return name + ".png"
}

// Set is an icon-set directory being populated.
type Set struct {
	Dir string
}

// WriteIcon encodes img as PNG and writes it into the set under the name
// for (size, scale), creating the directory if needed. It returns the
// written path.
func (s *Set) WriteIcon(img image.Image, size, scale int) (string, error) {
	name := FileName(size, scale)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encoding %s: %w", name, err)
	}
	p := filepath.Join(s.Dir, name)
	if err := paths.AtomicWrite(p, buf.Bytes()); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return p, nil
}
