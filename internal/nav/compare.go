package nav

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/supra-labs/docsnav/internal/content"
	"github.com/supra-labs/docsnav/internal/siteconfig"
)

// Comparator holds the collation rules of one locale. It is shared by the
// grouping, adjacency and first-page resolvers so their orderings agree.
//
// A Comparator is not safe for concurrent use; create one per operation.
type Comparator struct {
	// text ignores case and accents and compares digit runs numerically.
	text *collate.Collator
	// title is case-aware and numeric; used for derived section titles.
	title *collate.Collator
}

// NewComparator builds the comparator for a language tag.
func NewComparator(tag language.Tag) *Comparator {
	return &Comparator{
		text:  collate.New(tag, collate.Loose, collate.Numeric),
		title: collate.New(tag, collate.Numeric),
	}
}

func comparatorFor(cfg *siteconfig.Config, locale string) *Comparator {
	return NewComparator(cfg.Locales().Tag(locale))
}

// Compare orders two items by explicit order, then by text.
// Both ordered: ascending order. One ordered: it comes first regardless of value.
// Neither ordered: localized text comparison.
func (c *Comparator) Compare(aOrder *float64, aText string, bOrder *float64, bText string) int {
	switch {
	case aOrder != nil && bOrder != nil:
		return cmp.Compare(*aOrder, *bOrder)
	case aOrder != nil:
		return -1
	case bOrder != nil:
		return 1
	default:
		return c.text.CompareString(aText, bText)
	}
}

// CompareEntries orders sidebar entries.
func (c *Comparator) CompareEntries(a, b Entry) int {
	return c.Compare(a.Order, a.Text, b.Order, b.Text)
}

// CompareDocuments orders documents by sidebar order, then by label.
func (c *Comparator) CompareDocuments(a, b content.Document) int {
	return c.Compare(a.Order(), a.Label(), b.Order(), b.Label())
}

// CompareSections compares two display titles.
func (c *Comparator) CompareSections(a, b string) int {
	return c.title.CompareString(a, b)
}

// sectionOrder ranks the sections of one tab: configured sections first in
// configured order, then the others by derived title.
type sectionOrder struct {
	cmp    *Comparator
	index  map[string]int
	titles map[string]string
	title  func(id string) string
}

func newSectionOrder(cfg *siteconfig.Config, c *Comparator, tabID, locale string) *sectionOrder {
	ids := cfg.OrderedSectionIDs(tabID, locale)
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	return &sectionOrder{
		cmp:    c,
		index:  index,
		titles: make(map[string]string),
		title: func(id string) string {
			return cfg.SectionTitle(id, tabID, locale)
		},
	}
}

func (s *sectionOrder) sectionTitle(id string) string {
	if title, ok := s.titles[id]; ok {
		return title
	}
	title := s.title(id)
	s.titles[id] = title
	return title
}

func (s *sectionOrder) compare(a, b string) int {
	if a == b {
		return 0
	}

	ai, aDeclared := s.index[a]
	bi, bDeclared := s.index[b]

	switch {
	case aDeclared && bDeclared:
		return cmp.Compare(ai, bi)
	case aDeclared:
		return -1
	case bDeclared:
		return 1
	default:
		return s.cmp.CompareSections(s.sectionTitle(a), s.sectionTitle(b))
	}
}

func (s *sectionOrder) sort(ids []string) {
	slices.SortStableFunc(ids, s.compare)
}

// SortDocuments returns a stably sorted copy of docs using the order-then-label rule.
func SortDocuments(c *Comparator, docs []content.Document) []content.Document {
	sorted := slices.Clone(docs)
	slices.SortStableFunc(sorted, c.CompareDocuments)
	return sorted
}
