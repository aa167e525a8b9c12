// Package buildinfo exposes version metadata injected at link time.
package buildinfo

// These values are overridden with -ldflags "-X ...".
//
//nolint:gochecknoglobals // Set by the linker.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
