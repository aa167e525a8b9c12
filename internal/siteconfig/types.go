// Package siteconfig loads the per-locale navigation data of the documentation site
// and exposes the immutable tab and section index built from it.
package siteconfig

// Section is a second-level grouping inside a tab. Its ID matches the first
// path segment of the documents that belong to it.
type Section struct {
	ID    string `yaml:"id"    json:"id"`
	Title string `yaml:"title" json:"title"`
}

// Tab is a top-level documentation grouping shown as a sidebar tab.
type Tab struct {
	ID          string    `yaml:"id"          json:"id"`
	Title       string    `yaml:"title"       json:"title"`
	Description string    `yaml:"description" json:"description,omitempty"`
	Icon        string    `yaml:"icon"        json:"icon,omitempty"`
	Sections    []Section `yaml:"sections"    json:"sections"`
}

// SidebarNavData is the sidebarNavData dataset.
type SidebarNavData struct {
	Tabs []Tab `yaml:"tabs" json:"tabs"`
}

// NavItem is a top navigation entry.
type NavItem struct {
	Text string `yaml:"text" json:"text"`
	Link string `yaml:"link" json:"link"`
}

// NavData is the navData dataset.
type NavData struct {
	Items []NavItem `yaml:"items" json:"items"`
}

// Social is a social link shown in the header or footer.
type Social struct {
	Social string `yaml:"social" json:"social"`
	Link   string `yaml:"link"   json:"link"`
	Icon   string `yaml:"icon"   json:"icon"`
}

// Image is an image reference used in meta tags.
type Image struct {
	Src string `yaml:"src" json:"src"`
	Alt string `yaml:"alt" json:"alt"`
}

// Author is the SEO author block.
type Author struct {
	Name    string `yaml:"name"    json:"name"`
	Email   string `yaml:"email"   json:"email"`
	Twitter string `yaml:"twitter" json:"twitter"`
}

// SiteData is the siteData dataset.
type SiteData struct {
	Title         string   `yaml:"title"         json:"title"`
	Description   string   `yaml:"description"   json:"description"`
	NavSocials    []Social `yaml:"navSocials"    json:"navSocials"`
	FooterSocials []Social `yaml:"footerSocials" json:"footerSocials"`
	DefaultImage  Image    `yaml:"defaultImage"  json:"defaultImage"`
	Author        Author   `yaml:"author"        json:"author"`
}

// Dataset names accepted by Config.Dataset.
const (
	DatasetSidebarNav = "sidebarNavData"
	DatasetNav        = "navData"
	DatasetSite       = "siteData"
)

// DefaultTabID is the tab assigned to documents that do not declare one.
const DefaultTabID = "main"

// DefaultDocsRoute is the route segment used when none is configured.
const DefaultDocsRoute = "docs"

// Settings are the site-wide values that select which datasets to load.
type Settings struct {
	DocsRoute     string
	DefaultLocale string
	Locales       []string
}
