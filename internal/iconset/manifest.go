package iconset

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/filelocker/genicons/internal/paths"
)

// manifestAuthor is the author string recorded in the manifest info block.
const manifestAuthor = "xcode"

// Manifest is the Contents.json document describing an .appiconset.
type Manifest struct {
	Images []ManifestImage `json:"images"`
	Info   ManifestInfo    `json:"info"`
}

// ManifestImage describes one image file in the set.
type ManifestImage struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"` // "1x", "2x"
	Size     string `json:"size"`  // point size, e.g. "512x512"
}

// ManifestInfo identifies the manifest format and its writer.
type ManifestInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// BuildManifest returns the manifest describing entries, in order.
func BuildManifest(entries []Entry) Manifest {
	m := Manifest{
		Images: make([]ManifestImage, 0, len(entries)),
		Info:   ManifestInfo{Author: manifestAuthor, Version: 1},
	}
	for _, e := range entries {
		m.Images = append(m.Images, ManifestImage{
			Filename: FileName(e.Size, e.Scale),
			Idiom:    "mac",
			Scale:    fmt.Sprintf("%dx", e.Scale),
			Size:     fmt.Sprintf("%dx%d", e.Size, e.Size),
		})
	}
	return m
}

// WriteManifest writes the Contents.json for entries into the set
// directory and returns the written path.
func (s *Set) WriteManifest(entries []Entry) (string, error) {
	data, err := json.MarshalIndent(BuildManifest(entries), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", paths.ManifestFileName, err)
	}
	data = append(data, '\n')
	p := filepath.Join(s.Dir, paths.ManifestFileName)
	if err := paths.AtomicWrite(p, data); err != nil {
		return "", fmt.Errorf("writing %s: %w", paths.ManifestFileName, err)
	}
	return p, nil
}
