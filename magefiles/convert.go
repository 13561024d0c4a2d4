//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Convert builds the CLI and converts every .tex file under samples/,
// recording the results in the catalog.
func Convert() error {
	mg.Deps(Build, Init)
	bin := filepath.Join(binDir, binName)
	if err := sh.RunV(bin, "convert", "--catalog", "--force", samplesDir); err != nil {
		return fmt.Errorf("converting samples: %w", err)
	}
	return sh.RunV(bin, "catalog", "list")
}
