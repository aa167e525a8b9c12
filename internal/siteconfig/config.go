package siteconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"gopkg.in/yaml.v3"

	"github.com/supra-labs/docsnav/internal/locales"
)

// ErrUnknownDataset is returned by Dataset for names other than the known datasets.
var ErrUnknownDataset = errors.New("unknown dataset")

// Config is the navigation configuration of every locale. It is built once by
// Load and never mutated afterwards, so it can be shared freely.
type Config struct {
	locales   *locales.Set
	docsRoute string

	sidebar map[string]SidebarNavData
	nav     map[string]NavData
	site    map[string]SiteData

	// tabIndex maps locale -> tab id -> position in sidebar[locale].Tabs.
	tabIndex map[string]map[string]int
	tabIDs   []string

	bundle *i18n.Bundle
}

// Load reads every dataset for every configured locale from fsys.
//
// Layout:
//
//	<locale>/sidebarNavData.yaml
//	<locale>/navData.yaml
//	<locale>/siteData.yaml
//	i18n/<locale>.toml
//
// A locale without its own file for a dataset uses the default locale's copy.
func Load(fsys fs.FS, settings Settings) (*Config, error) {
	set, err := locales.NewSet(settings.DefaultLocale, settings.Locales)
	if err != nil {
		return nil, fmt.Errorf("invalid locale settings: %w", err)
	}

	cfg := &Config{
		locales:   set,
		docsRoute: NormalizeDocsRoute(settings.DocsRoute),
		sidebar:   make(map[string]SidebarNavData),
		nav:       make(map[string]NavData),
		site:      make(map[string]SiteData),
		tabIndex:  make(map[string]map[string]int),
	}

	dirs, err := localeEntries(fsys, ".", set, "")
	if err != nil {
		return nil, err
	}

	// Default locale first so that other locales can fall back to it.
	ordered := append([]string{set.Default()}, without(set.All(), set.Default())...)
	for _, locale := range ordered {
		dir, ok := dirs[locale]
		if !ok {
			dir = locale
		}
		if err := cfg.loadLocale(fsys, locale, dir); err != nil {
			return nil, err
		}
	}

	cfg.tabIDs = collectTabIDs(ordered, cfg.sidebar)

	bundle, err := loadBundle(fsys, set)
	if err != nil {
		return nil, err
	}
	cfg.bundle = bundle

	return cfg, nil
}

func (c *Config) loadLocale(fsys fs.FS, locale, dir string) error {
	def := c.locales.Default()

	var sidebar SidebarNavData
	found, err := readYAML(fsys, path.Join(dir, DatasetSidebarNav+".yaml"), &sidebar)
	if err != nil {
		return err
	}
	if !found && locale != def {
		sidebar = c.sidebar[def]
	}
	index, err := indexTabs(locale, sidebar.Tabs)
	if err != nil {
		return err
	}
	c.sidebar[locale] = sidebar
	c.tabIndex[locale] = index

	var items []NavItem
	found, err = readYAML(fsys, path.Join(dir, DatasetNav+".yaml"), &items)
	if err != nil {
		return err
	}
	if !found && locale != def {
		c.nav[locale] = c.nav[def]
	} else {
		c.nav[locale] = NavData{Items: items}
	}

	var site SiteData
	found, err = readYAML(fsys, path.Join(dir, DatasetSite+".yaml"), &site)
	if err != nil {
		return err
	}
	if !found && locale != def {
		site = c.site[def]
	}
	c.site[locale] = site

	return nil
}

// localeEntries maps configured locales to the entries of dir naming them,
// so "pt-br/" or "pt_BR.toml" resolve to the configured "pt-BR". With an empty
// ext only directories are considered, otherwise only files ending in ext.
func localeEntries(fsys fs.FS, dir string, set *locales.Set, ext string) (map[string]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	found := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() != (ext == "") {
			continue
		}
		stem, ok := strings.CutSuffix(name, ext)
		if !ok {
			continue
		}
		if locale, ok := set.Lookup(stem); ok {
			if _, dup := found[locale]; !dup || stem == locale {
				found[locale] = name
			}
		}
	}
	return found, nil
}

func readYAML(fsys fs.FS, name string, out any) (bool, error) {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return true, nil
}

func indexTabs(locale string, tabs []Tab) (map[string]int, error) {
	index := make(map[string]int, len(tabs))
	for i, tab := range tabs {
		if tab.ID == "" {
			return nil, fmt.Errorf("locale %s: tab at position %d has no id", locale, i)
		}
		if _, dup := index[tab.ID]; dup {
			return nil, fmt.Errorf("locale %s: duplicate tab id %q", locale, tab.ID)
		}
		index[tab.ID] = i

		seen := make(map[string]bool, len(tab.Sections))
		for _, section := range tab.Sections {
			if section.ID == "" {
				return nil, fmt.Errorf("locale %s: tab %q has a section without id", locale, tab.ID)
			}
			if seen[section.ID] {
				return nil, fmt.Errorf("locale %s: tab %q has duplicate section id %q", locale, tab.ID, section.ID)
			}
			seen[section.ID] = true
		}
	}
	return index, nil
}

func collectTabIDs(ordered []string, sidebar map[string]SidebarNavData) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, locale := range ordered {
		for _, tab := range sidebar[locale].Tabs {
			if !seen[tab.ID] {
				seen[tab.ID] = true
				ids = append(ids, tab.ID)
			}
		}
	}

	if len(ids) == 0 {
		return []string{DefaultTabID}
	}
	return ids
}

func without(list []string, drop string) []string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		if item != drop {
			out = append(out, item)
		}
	}
	return out
}

// NormalizeDocsRoute strips surrounding slashes and applies the default route.
func NormalizeDocsRoute(route string) string {
	route = strings.Trim(strings.TrimSpace(route), "/")
	if route == "" {
		return DefaultDocsRoute
	}
	return route
}

// Locales returns the configured locale set.
func (c *Config) Locales() *locales.Set {
	return c.locales
}

// DocsRoute returns the docs route segment without slashes (e.g. "docs").
func (c *Config) DocsRoute() string {
	return c.docsRoute
}

// BaseRoute returns the generic documentation route (e.g. "/docs").
func (c *Config) BaseRoute() string {
	return "/" + c.docsRoute
}

// Link returns the route of a document id (e.g. "/docs/overview/intro").
func (c *Config) Link(docID string) string {
	return "/" + c.docsRoute + "/" + docID
}

// TabIDs returns every tab id declared in any locale, in first-seen order.
// It is the set of values a document's tab field may take.
func (c *Config) TabIDs() []string {
	return slices.Clone(c.tabIDs)
}

// IsValidTab reports whether id is one of TabIDs.
func (c *Config) IsValidTab(id string) bool {
	return slices.Contains(c.tabIDs, id)
}

// Dataset returns the named dataset for locale, falling back to the default locale.
func (c *Config) Dataset(name, locale string) (any, error) {
	switch name {
	case DatasetSidebarNav:
		return c.SidebarNavData(locale), nil
	case DatasetNav:
		return c.NavData(locale), nil
	case DatasetSite:
		return c.SiteData(locale), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDataset, name)
	}
}

// SidebarNavData returns the sidebar data of locale.
func (c *Config) SidebarNavData(locale string) SidebarNavData {
	if data, ok := c.sidebar[locale]; ok {
		return data
	}
	return c.sidebar[c.locales.Default()]
}

// NavData returns the top navigation of locale.
func (c *Config) NavData(locale string) NavData {
	if data, ok := c.nav[locale]; ok {
		return data
	}
	return c.nav[c.locales.Default()]
}

// SiteData returns the site metadata of locale.
func (c *Config) SiteData(locale string) SiteData {
	if data, ok := c.site[locale]; ok {
		return data
	}
	return c.site[c.locales.Default()]
}
