package nav

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/supra-labs/docsnav/internal/content"
)

func TestNavigatorPage(t *testing.T) {
	t.Parallel()

	docs := content.NewCollection([]content.Document{
		doc("x/one", "a", "One"),
		doc("x/two", "a", "Two"),
		doc("x/two", "a", "Zwei", withLocale("de")),
	})
	n := NewNavigator(testConfig(t), docs, Options{})

	page, err := n.Page("de", "/docs/x/two/")
	require.NoError(t, err)
	require.Equal(t, "Zwei", page.Title)

	page, err = n.Page("de", "x/one")
	require.NoError(t, err)
	require.Equal(t, "One", page.Title, "falls back to the default locale")

	_, err = n.Page("en", "x/missing")
	require.Error(t, err)
}

func TestNavigatorResolveLocale(t *testing.T) {
	t.Parallel()

	n := NewNavigator(testConfig(t), content.NewCollection(nil), Options{})

	locale, err := n.ResolveLocale("")
	require.NoError(t, err)
	require.Equal(t, "en", locale)

	locale, err = n.ResolveLocale("de-AT")
	require.NoError(t, err)
	require.Equal(t, "de", locale)

	locale, err = n.ResolveLocale("ja")
	require.Error(t, err)
	require.Equal(t, "en", locale)
}

func TestNavigatorDrafts(t *testing.T) {
	t.Parallel()

	docs := content.NewCollection([]content.Document{
		doc("x/draft", "a", "Aaa draft", asDraft()),
		doc("x/live", "a", "Live"),
	})

	hidden := NewNavigator(testConfig(t), docs, Options{})
	require.Equal(t, "/docs/x/live", hidden.FirstPages("en")["a"])
	require.Equal(t, []string{"Live"}, texts(hidden.DocsBySection("en", "a").DocsBySection["x"]))

	shown := NewNavigator(testConfig(t), docs, Options{IncludeDrafts: true})
	require.Equal(t, "/docs/x/draft", shown.FirstPages("en")["a"])
	require.Equal(t, Adjacent{}, shown.AdjacentPages("x/draft", "en", "a"), "adjacency never includes drafts")
}

func TestNavigatorSidebarContentSingleTab(t *testing.T) {
	t.Parallel()

	cfg := loadConfig(t, "tabs:\n  - id: main\n    sections:\n      - id: guide\n")
	docs := content.NewCollection([]content.Document{
		doc("guide/b", "main", "B"),
		doc("guide/a", "main", "A"),
	})
	n := NewNavigator(cfg, docs, Options{})

	require.Empty(t, n.TabsContent("en"))

	sidebar := n.SidebarContent("en")
	require.Len(t, sidebar, 1)
	require.Equal(t, "main", sidebar[0].ID)
	require.Equal(t, []string{"guide"}, sidebar[0].Sections)
	require.Equal(t, []string{"A", "B"}, texts(sidebar[0].TabSections["guide"]))
}

func TestNavigatorAdjacentPagesNormalizesSlug(t *testing.T) {
	t.Parallel()

	docs := content.NewCollection([]content.Document{
		doc("x/one", "a", "One", withOrder(1)),
		doc("x/two", "a", "Two", withOrder(2)),
	})
	n := NewNavigator(testConfig(t), docs, Options{})

	adj := n.AdjacentPages("/docs/x/two", "en", "a")
	require.Equal(t, "x/one", adj.Prev.Slug)
	require.Nil(t, adj.Next)
}
