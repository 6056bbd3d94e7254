package iconset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/filelocker/genicons/internal/paths"
)

func TestBuildManifest(t *testing.T) {
	got := BuildManifest([]Entry{{Size: 512, Scale: 1}, {Size: 512, Scale: 2}})
	want := Manifest{
		Images: []ManifestImage{
			{Filename: "app_icon_512x512.png", Idiom: "mac", Scale: "1x", Size: "512x512"},
			{Filename: "app_icon_512x512@2x.png", Idiom: "mac", Scale: "2x", Size: "512x512"},
		},
		Info: ManifestInfo{Author: "xcode", Version: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BuildManifest mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteManifestRoundTrip(t *testing.T) {
	set := &Set{Dir: t.TempDir()}
	entries := []Entry{{Size: 512, Scale: 1}, {Size: 512, Scale: 2}}

	p, err := set.WriteManifest(entries)
	if err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	if got := filepath.Base(p); got != paths.ManifestFileName {
		t.Errorf("manifest written as %q, want %q", got, paths.ManifestFileName)
	}

	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var got Manifest
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(BuildManifest(entries), got); diff != "" {
		t.Errorf("manifest on disk mismatch (-want +got):\n%s", diff)
	}
	if data[len(data)-1] != '\n' {
		t.Error("manifest does not end with a newline")
	}
}
