package nav

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/supra-labs/docsnav/internal/content"
)

func drawDocs(t *rapid.T) []content.Document {
	n := rapid.IntRange(0, 24).Draw(t, "n")
	docs := make([]content.Document, 0, n)
	for i := range n {
		section := rapid.SampledFrom([]string{"x", "y", "extra", "step-2", "step-10"}).Draw(t, "section")
		title := rapid.StringMatching(`[A-Za-z0-9 ]{1,8}`).Draw(t, "title")
		d := doc(fmt.Sprintf("%s/doc-%d", section, i), "a", title)
		if rapid.Bool().Draw(t, "ordered") {
			withOrder(rapid.Float64Range(-50, 50).Draw(t, "order"))(&d)
		}
		docs = append(docs, d)
	}
	return docs
}

func TestOrderedEntriesComeFirst(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)

	rapid.Check(t, func(t *rapid.T) {
		groups := ProcessDocsBySection(cfg, drawDocs(t), "en", "a")

		for section, entries := range groups.DocsBySection {
			seenUnordered := false
			for i, e := range entries {
				if e.Order == nil {
					seenUnordered = true
					continue
				}
				if seenUnordered {
					t.Fatalf("section %s: ordered entry %q after unordered one", section, e.Text)
				}
				if i > 0 && entries[i-1].Order != nil && *entries[i-1].Order > *e.Order {
					t.Fatalf("section %s: order %v before %v", section, *entries[i-1].Order, *e.Order)
				}
			}
		}
	})
}

func TestGroupingIsIdempotent(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)

	rapid.Check(t, func(t *rapid.T) {
		docs := drawDocs(t)
		require.Equal(t, ProcessTabsContent(cfg, cfg.Tabs("en"), docs, "en"), ProcessTabsContent(cfg, cfg.Tabs("en"), docs, "en"))
	})
}

func TestSectionsFollowConfiguredOrder(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)

	rapid.Check(t, func(t *rapid.T) {
		groups := ProcessDocsBySection(cfg, drawDocs(t), "en", "a")

		declared := 0
		for _, id := range groups.Sections {
			if id == "x" || id == "y" {
				declared++
			}
		}
		for i, id := range groups.Sections {
			isDeclared := id == "x" || id == "y"
			if isDeclared != (i < declared) {
				t.Fatalf("undeclared section before declared one: %v", groups.Sections)
			}
		}
	})
}

func TestAdjacencyMatchesReadingOrder(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)

	rapid.Check(t, func(t *rapid.T) {
		docs := drawDocs(t)
		ordered := ReadingOrder(cfg, docs, "en", "a")

		for i, d := range ordered {
			adj := AdjacentPages(cfg, docs, d.ID, "en", "a")
			if i == 0 {
				require.Nil(t, adj.Prev)
			} else {
				require.Equal(t, ordered[i-1].ID, adj.Prev.Slug)
			}
			if i == len(ordered)-1 {
				require.Nil(t, adj.Next)
			} else {
				require.Equal(t, ordered[i+1].ID, adj.Next.Slug)
			}
		}
	})
}
