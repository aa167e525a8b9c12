// Package docsnav provides the embedded default site configuration.
package docsnav

import (
	"embed"
	"io/fs"
)

//go:embed config
var defaultConfig embed.FS

// DefaultConfig returns the bundled navigation datasets rooted at the config directory.
func DefaultConfig() fs.FS {
	sub, err := fs.Sub(defaultConfig, "config")
	if err != nil {
		panic(err)
	}
	return sub
}
