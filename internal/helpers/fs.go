// Package helpers provides utility functions.
package helpers

import "strings"

// Content formats reported by GetPathType.
const (
	PathTypeMarkdown = "markdown"
	PathTypeMDX      = "mdx"
	PathTypeOther    = "other"
)

// GetPathType classifies a content file path by extension for loading and logging.
func GetPathType(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".mdx"):
		return PathTypeMDX
	case strings.HasSuffix(lower, ".md"):
		return PathTypeMarkdown
	}
	return PathTypeOther
}

// IsContentFile reports whether path is a Markdown or MDX file.
func IsContentFile(path string) bool {
	return GetPathType(path) != PathTypeOther
}
