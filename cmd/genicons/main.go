// genicons renders the FileLocker application icon set: a white padlock on
// a blue disc, written as PNGs into the Xcode asset catalog together with
// the Contents.json manifest.
// Usage: go run ./cmd/genicons (no arguments; paths are fixed)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/filelocker/genicons/internal/icon"
	"github.com/filelocker/genicons/internal/iconset"
	"github.com/filelocker/genicons/internal/paths"
)

// entries lists the icon variants the FileLocker app bundle ships: the
// 512pt slot at 1x and 2x.
var entries = []iconset.Entry{
	{Size: 512, Scale: 1},
	{Size: 512, Scale: 2},
}

func main() {
	if err := run(os.Stdout, paths.AppIconSetDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders every entry into the icon set at dir, writes the manifest,
// and prints one confirmation line per file.
func run(out io.Writer, dir string) error {
	set := &iconset.Set{Dir: dir}
	for _, e := range entries {
		img := icon.Draw(e.Size, e.Scale)
		p, err := set.WriteIcon(img, e.Size, e.Scale)
		if err != nil {
			return err
		}
		px := e.Size * e.Scale
		fmt.Fprintf(out, "generated %s (%dx%d)\n", p, px, px)
	}

	p, err := set.WriteManifest(entries)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", p)
	fmt.Fprintln(out, "icon generation complete")
	return nil
}
