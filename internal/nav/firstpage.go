package nav

import (
	"strings"

	"github.com/supra-labs/docsnav/internal/content"
	"github.com/supra-labs/docsnav/internal/siteconfig"
)

// FirstPagesMap maps every tab id to the URL of its landing page.
//
// For each configured section in order, an index document (id equal to the
// section id or "<section>/index") wins, otherwise the first sorted document
// of the section. Tabs whose configured sections are all empty use the first
// sorted document of the tab, and tabs without documents use the docs base route.
func FirstPagesMap(cfg *siteconfig.Config, tabs []siteconfig.Tab, docs []content.Document, locale string) map[string]string {
	c := comparatorFor(cfg, locale)
	pages := make(map[string]string, len(tabs))

	for _, tab := range tabs {
		tabDocs := content.FilterByTab(docs, tab.ID)
		if len(tabDocs) == 0 {
			pages[tab.ID] = cfg.BaseRoute()
			continue
		}

		if doc, ok := firstInSections(c, cfg.TabSections(tab.ID, locale), tabDocs); ok {
			pages[tab.ID] = cfg.Link(doc.ID)
			continue
		}

		pages[tab.ID] = cfg.Link(SortDocuments(c, tabDocs)[0].ID)
	}

	return pages
}

func firstInSections(c *Comparator, sections []siteconfig.Section, docs []content.Document) (content.Document, bool) {
	for _, section := range sections {
		for _, doc := range docs {
			if isSectionIndex(doc.ID, section.ID) {
				return doc, true
			}
		}

		var inSection []content.Document
		for _, doc := range docs {
			if strings.HasPrefix(doc.ID, section.ID+"/") {
				inSection = append(inSection, doc)
			}
		}
		if len(inSection) > 0 {
			return SortDocuments(c, inSection)[0], true
		}
	}

	return content.Document{}, false
}

func isSectionIndex(id, sectionID string) bool {
	return id == sectionID || id == sectionID+"/index"
}
