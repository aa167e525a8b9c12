package nav

import (
	"slices"

	"github.com/supra-labs/docsnav/internal/content"
	"github.com/supra-labs/docsnav/internal/siteconfig"
)

// ProcessDocsBySection groups the documents of one tab by section. Docs must
// already be restricted to one locale; the tab field of each doc is not checked.
func ProcessDocsBySection(cfg *siteconfig.Config, docs []content.Document, locale, tabID string) SectionGroups {
	c := comparatorFor(cfg, locale)

	groups := SectionGroups{
		Sections:      []string{},
		DocsBySection: make(map[string][]Entry),
	}

	for _, doc := range docs {
		section := doc.Section()
		if _, seen := groups.DocsBySection[section]; !seen {
			groups.Sections = append(groups.Sections, section)
		}
		groups.DocsBySection[section] = append(groups.DocsBySection[section], newEntry(doc, cfg.Link(doc.ID)))
	}

	newSectionOrder(cfg, c, tabID, locale).sort(groups.Sections)

	for _, entries := range groups.DocsBySection {
		slices.SortStableFunc(entries, c.CompareEntries)
	}

	return groups
}

// ProcessTabsContent builds the sidebar content of every tab. Sites with fewer
// than two tabs get an empty result. Every tab gets an element, in input
// order, even when no document belongs to it.
func ProcessTabsContent(cfg *siteconfig.Config, tabs []siteconfig.Tab, docs []content.Document, locale string) []TabContent {
	if len(tabs) < 2 {
		return []TabContent{}
	}

	result := make([]TabContent, 0, len(tabs))
	for _, tab := range tabs {
		groups := ProcessDocsBySection(cfg, content.FilterByTab(docs, tab.ID), locale, tab.ID)
		result = append(result, TabContent{
			ID:          tab.ID,
			Sections:    groups.Sections,
			TabSections: groups.DocsBySection,
		})
	}

	return result
}
