package nav

import (
	"fmt"
	"strings"

	"github.com/supra-labs/docsnav/internal/content"
	"github.com/supra-labs/docsnav/internal/siteconfig"
)

// Options configures a Navigator.
type Options struct {
	// IncludeDrafts keeps draft documents in the sidebar and first pages.
	// Adjacency always skips drafts.
	IncludeDrafts bool
}

// Navigator answers navigation queries over a loaded configuration and
// document collection. It is safe for concurrent use.
type Navigator struct {
	cfg  *siteconfig.Config
	docs *content.Collection
	opts Options
}

// NewNavigator creates a navigator over cfg and docs.
func NewNavigator(cfg *siteconfig.Config, docs *content.Collection, opts Options) *Navigator {
	return &Navigator{cfg: cfg, docs: docs, opts: opts}
}

// Config returns the site configuration.
func (n *Navigator) Config() *siteconfig.Config {
	return n.cfg
}

// Documents returns the document collection.
func (n *Navigator) Documents() *content.Collection {
	return n.docs
}

// ResolveLocale maps a requested locale to a configured one. An empty request
// resolves to the default locale. Unmatched requests return the default locale
// together with an error.
func (n *Navigator) ResolveLocale(requested string) (string, error) {
	set := n.cfg.Locales()
	if requested == "" {
		return set.Default(), nil
	}
	return set.Match(requested)
}

// Tabs returns the configured tabs of locale.
func (n *Navigator) Tabs(locale string) []siteconfig.Tab {
	return n.cfg.Tabs(locale)
}

func (n *Navigator) visible(locale string) []content.Document {
	docs := n.docs.ByLocale(locale)
	if n.opts.IncludeDrafts {
		return docs
	}
	return content.NonDraft(docs)
}

// TabsContent returns the per-tab sidebar content; empty for single-tab sites.
func (n *Navigator) TabsContent(locale string) []TabContent {
	return ProcessTabsContent(n.cfg, n.Tabs(locale), n.visible(locale), locale)
}

// DocsBySection groups the documents of one tab by section.
func (n *Navigator) DocsBySection(locale, tabID string) SectionGroups {
	return ProcessDocsBySection(n.cfg, content.FilterByTab(n.visible(locale), tabID), locale, tabID)
}

// SidebarContent returns the sidebar content of every tab. Unlike
// TabsContent it also covers single-tab sites and sites without tabs, where
// all documents belong to the default tab.
func (n *Navigator) SidebarContent(locale string) []TabContent {
	tabs := n.Tabs(locale)
	if len(tabs) >= 2 {
		return n.TabsContent(locale)
	}

	tabID := siteconfig.DefaultTabID
	if len(tabs) == 1 {
		tabID = tabs[0].ID
	}
	groups := n.DocsBySection(locale, tabID)

	return []TabContent{{ID: tabID, Sections: groups.Sections, TabSections: groups.DocsBySection}}
}

// FirstPages maps each tab of locale to its landing page URL.
func (n *Navigator) FirstPages(locale string) map[string]string {
	return FirstPagesMap(n.cfg, n.Tabs(locale), n.visible(locale), locale)
}

// AdjacentPages returns the previous and next pages of currentID.
func (n *Navigator) AdjacentPages(currentID, locale, tabID string) Adjacent {
	return AdjacentPages(n.cfg, n.docs.All(), n.NormalizeSlug(currentID), locale, tabID)
}

// Sidebar returns the sidebar tree of locale.
func (n *Navigator) Sidebar(locale string, opts TreeOptions) ([]*TabNode, error) {
	return BuildSidebarTree(n.cfg, locale, n.SidebarContent(locale), n.FirstPages(locale), opts)
}

// Page finds a document by slug. Documents missing from locale fall back to
// the default locale.
func (n *Navigator) Page(locale, slug string) (content.Document, error) {
	id := n.NormalizeSlug(slug)

	if doc, ok := n.docs.Get(locale, id); ok {
		return doc, nil
	}

	def := n.cfg.Locales().Default()
	if locale != def {
		if doc, ok := n.docs.Get(def, id); ok {
			return doc, nil
		}
	}

	return content.Document{}, fmt.Errorf("page not found: %s", slug)
}

// NormalizeSlug turns a link or slug into a document id: surrounding slashes
// and the docs route prefix are removed.
func (n *Navigator) NormalizeSlug(slug string) string {
	slug = strings.Trim(slug, "/")
	if rest, ok := strings.CutPrefix(slug, n.cfg.DocsRoute()+"/"); ok {
		slug = rest
	}
	return slug
}
