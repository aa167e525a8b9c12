package nav

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/supra-labs/docsnav/internal/siteconfig"
)

// LocaleIndex holds the prebuilt navigation of one locale.
type LocaleIndex struct {
	Tabs        []siteconfig.Tab         `json:"tabs"`
	TabsContent []TabContent             `json:"tabsContent"`
	Sections    map[string]SectionGroups `json:"sections"`
	FirstPages  map[string]string        `json:"firstPages"`
	Adjacent    map[string]Adjacent      `json:"adjacent"`
	Labels      map[string]string        `json:"labels"`
}

// Index is the navigation.json build artifact.
type Index struct {
	Generator     string                  `json:"generator,omitempty"`
	DefaultLocale string                  `json:"default_locale"`
	DocsRoute     string                  `json:"docs_route"`
	Locales       map[string]*LocaleIndex `json:"locales"`

	// ByLink maps locale -> link -> document id (runtime only).
	ByLink map[string]map[string]string `json:"-"`
}

// BuildIndex precomputes the navigation of every configured locale.
func BuildIndex(n *Navigator, generator string) *Index {
	cfg := n.Config()
	idx := &Index{
		Generator:     generator,
		DefaultLocale: cfg.Locales().Default(),
		DocsRoute:     cfg.DocsRoute(),
		Locales:       make(map[string]*LocaleIndex),
		ByLink:        make(map[string]map[string]string),
	}

	for _, locale := range cfg.Locales().All() {
		li := &LocaleIndex{
			Tabs:        n.Tabs(locale),
			TabsContent: n.TabsContent(locale),
			Sections:    make(map[string]SectionGroups),
			FirstPages:  n.FirstPages(locale),
			Adjacent:    make(map[string]Adjacent),
			Labels: cfg.Texts(locale,
				siteconfig.TextPrevPage,
				siteconfig.TextNextPage,
				siteconfig.TextOnThisPage,
				siteconfig.TextDocsHome,
			),
		}

		for _, tc := range n.SidebarContent(locale) {
			li.Sections[tc.ID] = SectionGroups{Sections: tc.Sections, DocsBySection: tc.TabSections}
		}

		// Adjacency is resolved within the tab of each page.
		all := n.Documents().All()
		for _, tabID := range tabIDsOf(n, locale) {
			ordered := ReadingOrder(cfg, all, locale, tabID)
			for i, doc := range ordered {
				li.Adjacent[doc.ID] = adjacentAt(ordered, i)
			}
		}

		idx.Locales[locale] = li
	}

	idx.buildRuntimeIndexes()
	return idx
}

func tabIDsOf(n *Navigator, locale string) []string {
	var ids []string
	for _, doc := range n.Documents().ByLocale(locale) {
		if !slices.Contains(ids, doc.Tab) {
			ids = append(ids, doc.Tab)
		}
	}
	return ids
}

func (idx *Index) buildRuntimeIndexes() {
	idx.ByLink = make(map[string]map[string]string, len(idx.Locales))
	for locale, li := range idx.Locales {
		links := make(map[string]string)
		for _, groups := range li.Sections {
			for _, entries := range groups.DocsBySection {
				for _, entry := range entries {
					links[entry.Link] = idx.idFromLink(entry.Link)
				}
			}
		}
		idx.ByLink[locale] = links
	}
}

func (idx *Index) idFromLink(link string) string {
	if id, ok := strings.CutPrefix(link, "/"+idx.DocsRoute+"/"); ok {
		return id
	}
	return link
}

// LocaleNames returns the indexed locales in sorted order.
func (idx *Index) LocaleNames() []string {
	names := make([]string, 0, len(idx.Locales))
	for name := range idx.Locales {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the neighbours of a document id in locale.
func (idx *Index) Lookup(locale, id string) (Adjacent, bool) {
	li, ok := idx.Locales[locale]
	if !ok {
		return Adjacent{}, false
	}
	adj, ok := li.Adjacent[id]
	return adj, ok
}

// ResolveLink returns the document id a sidebar link points at.
func (idx *Index) ResolveLink(locale, link string) (string, bool) {
	id, ok := idx.ByLink[locale][link]
	return id, ok
}

// WriteJSON serializes the index to a JSON file.
func (idx *Index) WriteJSON(outputPath string) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write index file: %w", err)
	}

	return nil
}

// LoadJSON deserializes the index from JSON data and rebuilds runtime indexes.
func LoadJSON(data []byte) (*Index, error) {
	var index Index
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to unmarshal index: %w", err)
	}

	if index.Locales == nil {
		index.Locales = make(map[string]*LocaleIndex)
	}
	index.buildRuntimeIndexes()

	return &index, nil
}
