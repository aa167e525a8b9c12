package nav

import (
	"slices"

	"github.com/supra-labs/docsnav/internal/content"
	"github.com/supra-labs/docsnav/internal/siteconfig"
)

// ReadingOrder filters docs to the non-draft documents of locale (and of
// tabID when set) and sorts them in sidebar reading order: section rank
// first, then the entry rule.
func ReadingOrder(cfg *siteconfig.Config, docs []content.Document, locale, tabID string) []content.Document {
	filtered := content.NonDraft(content.FilterByLocale(docs, locale))
	if tabID != "" {
		filtered = content.FilterByTab(filtered, tabID)
	}

	c := comparatorFor(cfg, locale)
	sections := newSectionOrder(cfg, c, tabID, locale)

	slices.SortStableFunc(filtered, func(a, b content.Document) int {
		if n := sections.compare(a.Section(), b.Section()); n != 0 {
			return n
		}
		return c.CompareDocuments(a, b)
	})

	return filtered
}

// AdjacentPages returns the documents before and after currentID in reading
// order. Both are nil when currentID is not part of the filtered list.
func AdjacentPages(cfg *siteconfig.Config, docs []content.Document, currentID, locale, tabID string) Adjacent {
	ordered := ReadingOrder(cfg, docs, locale, tabID)

	idx := slices.IndexFunc(ordered, func(d content.Document) bool {
		return d.ID == currentID
	})
	if idx < 0 {
		return Adjacent{}
	}

	return adjacentAt(ordered, idx)
}

func adjacentAt(ordered []content.Document, idx int) Adjacent {
	var adj Adjacent
	if idx > 0 {
		adj.Prev = newPageRef(ordered[idx-1])
	}
	if idx < len(ordered)-1 {
		adj.Next = newPageRef(ordered[idx+1])
	}
	return adj
}
