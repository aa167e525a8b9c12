// Package content loads documentation entries from Markdown/MDX files and
// validates their frontmatter against the site configuration.
package content

import (
	"errors"
	"strings"
)

// ErrInvalidDocument marks a document whose frontmatter fails validation.
var ErrInvalidDocument = errors.New("invalid document")

// Badge variants accepted in sidebar.badge.variant.
const (
	VariantNote    = "note"
	VariantTip     = "tip"
	VariantCaution = "caution"
	VariantDanger  = "danger"
	VariantInfo    = "info"
)

// Badge is a short label rendered next to a sidebar entry.
type Badge struct {
	Text    string `yaml:"text"    json:"text"`
	Variant string `yaml:"variant" json:"variant"`
}

// Sidebar controls how a document appears in the sidebar.
type Sidebar struct {
	// Label replaces the title in navigation when set.
	Label string `yaml:"label" json:"label,omitempty"`

	// Order ranks the document within its section; ordered documents come first.
	Order *float64 `yaml:"order" json:"order,omitempty"`

	Badge *Badge `yaml:"badge" json:"badge,omitempty"`
}

// TableOfContents limits the heading levels shown in the page outline.
type TableOfContents struct {
	MinHeadingLevel *int `yaml:"minHeadingLevel" json:"minHeadingLevel,omitempty"`
	MaxHeadingLevel *int `yaml:"maxHeadingLevel" json:"maxHeadingLevel,omitempty"`
}

// Frontmatter is the YAML header of a documentation file.
type Frontmatter struct {
	Title           string           `yaml:"title"`
	Description     string           `yaml:"description"`
	Tab             string           `yaml:"tab"`
	Sidebar         *Sidebar         `yaml:"sidebar"`
	TableOfContents *TableOfContents `yaml:"tableOfContents"`
	Pagefind        *bool            `yaml:"pagefind"`
	MappingKey      string           `yaml:"mappingKey"`
	Draft           bool             `yaml:"draft"`
}

// Document is a validated documentation entry.
type Document struct {
	// ID is the slug relative to the locale root (e.g. "overview/intro").
	// Its first segment is the section id.
	ID string `json:"id"`

	// Locale is the locale the document belongs to.
	Locale string `json:"locale"`

	// Path is the file path inside the content filesystem.
	Path string `json:"-"`

	// RelPath is the path relative to the locale root.
	RelPath string `json:"rel_path"`

	Title           string           `json:"title"`
	Description     string           `json:"description,omitempty"`
	Tab             string           `json:"tab"`
	Sidebar         *Sidebar         `json:"sidebar,omitempty"`
	TableOfContents *TableOfContents `json:"tableOfContents,omitempty"`
	Pagefind        *bool            `json:"pagefind,omitempty"`
	MappingKey      string           `json:"mappingKey,omitempty"`
	Draft           bool             `json:"draft,omitempty"`

	// Body is the Markdown content after the frontmatter.
	Body string `json:"-"`
}

// Section returns the first path segment of the document id.
func (d Document) Section() string {
	section, _, _ := strings.Cut(d.ID, "/")
	return section
}

// Label returns the sidebar label when set, otherwise the title.
func (d Document) Label() string {
	if d.Sidebar != nil && d.Sidebar.Label != "" {
		return d.Sidebar.Label
	}
	return d.Title
}

// Order returns the explicit sidebar order, if any.
func (d Document) Order() *float64 {
	if d.Sidebar == nil {
		return nil
	}
	return d.Sidebar.Order
}

// Badge returns the sidebar badge, if any.
func (d Document) Badge() *Badge {
	if d.Sidebar == nil {
		return nil
	}
	return d.Sidebar.Badge
}
