package content

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/supra-labs/docsnav/internal/siteconfig"
)

func newTestConfig(t *testing.T) *siteconfig.Config {
	t.Helper()

	fsys := fstest.MapFS{
		"en/sidebarNavData.yaml": {Data: []byte("tabs:\n  - id: overview\n    sections:\n      - id: overview\n  - id: build\n")},
	}
	cfg, err := siteconfig.Load(fsys, siteconfig.Settings{DefaultLocale: "en", Locales: []string{"en", "de"}})
	require.NoError(t, err)
	return cfg
}

func page(front string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte("---\n" + front + "\n---\nBody text\n")}
}

func TestLoadAssignsLocalesAndIDs(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"overview/index.md":          page("title: Overview\ntab: overview"),
		"overview/Getting Started.mdx": page("title: Getting Started\ntab: overview"),
		"de/overview/index.md":       page("title: Überblick\ntab: overview"),
		"build/_partial.md":          page("title: Partial\ntab: build"),
		"build/logo.png":             {Data: []byte{0x89}},
	}

	coll, err := Load(fsys, newTestConfig(t), LoadOptions{Strict: true, IncludeBody: true})
	require.NoError(t, err)
	require.Equal(t, 3, coll.Len())

	doc, ok := coll.Get("en", "overview")
	require.True(t, ok)
	require.Equal(t, "Overview", doc.Title)
	require.Equal(t, "overview/index.md", doc.RelPath)
	require.Equal(t, "Body text", doc.Body)

	doc, ok = coll.Get("en", "overview/getting-started")
	require.True(t, ok)
	require.Equal(t, "overview", doc.Section())

	doc, ok = coll.Get("de", "overview")
	require.True(t, ok)
	require.Equal(t, "Überblick", doc.Title)

	require.Len(t, coll.ByLocale("en"), 2)
	require.Len(t, coll.ByLocale("de"), 1)
}

func TestLoadMatchesRegionalLocaleDirectories(t *testing.T) {
	t.Parallel()

	cfg, err := siteconfig.Load(fstest.MapFS{
		"en/sidebarNavData.yaml": {Data: []byte("tabs:\n  - id: overview\n")},
	}, siteconfig.Settings{DefaultLocale: "en", Locales: []string{"en", "pt-br"}})
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"pt-br/overview/a.md": page("title: A\ntab: overview"),
		"overview/b.md":       page("title: B\ntab: overview"),
	}

	coll, err := Load(fsys, cfg, LoadOptions{Strict: true})
	require.NoError(t, err)

	regional := coll.ByLocale("pt-BR")
	require.Len(t, regional, 1)
	require.Equal(t, "overview/a", regional[0].ID)
	require.Equal(t, "pt-BR", regional[0].Locale)

	_, ok := coll.Get("en", "pt-br/overview/a")
	require.False(t, ok)
	require.Len(t, coll.ByLocale("en"), 1)
}

func TestLoadStrictRejectsUnknownTab(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"overview/a.md": page("title: A\ntab: nope"),
	}

	_, err := Load(fsys, newTestConfig(t), LoadOptions{Strict: true})
	require.ErrorIs(t, err, ErrInvalidDocument)
}

func TestLoadLenientSkipsInvalid(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"overview/a.md": page("title: A\ntab: nope"),
		"overview/b.md": page("tab: overview"),
		"overview/c.md": page("title: C\ntab: overview"),
	}

	coll, err := Load(fsys, newTestConfig(t), LoadOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, coll.Len())

	_, ok := coll.Get("en", "overview/c")
	require.True(t, ok)
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"overview.md":       page("title: A\ntab: overview"),
		"overview/index.md": page("title: B\ntab: overview"),
	}

	_, err := Load(fsys, newTestConfig(t), LoadOptions{Strict: true})
	require.ErrorIs(t, err, ErrInvalidDocument)
}

func TestLoadDefaultTabMustBeConfigured(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"overview/a.md": page("title: A"),
	}

	_, err := Load(fsys, newTestConfig(t), LoadOptions{Strict: true})
	require.ErrorIs(t, err, ErrInvalidDocument, "tab defaults to main, which is not configured")
}

func TestPathToID(t *testing.T) {
	t.Parallel()

	require.Equal(t, "overview", PathToID("overview/index.md"))
	require.Equal(t, "build/getting-started", PathToID("build/Getting Started.mdx"))
	require.Equal(t, "index", PathToID("index.md"))
	require.Equal(t, "a/b/c", PathToID("a/b/c.md"))
}

func TestDocumentAccessors(t *testing.T) {
	t.Parallel()

	order := 3.0
	doc := Document{ID: "x/one", Title: "One", Sidebar: &Sidebar{Label: "First", Order: &order, Badge: &Badge{Text: "New"}}}
	require.Equal(t, "x", doc.Section())
	require.Equal(t, "First", doc.Label())
	require.Equal(t, &order, doc.Order())
	require.Equal(t, "New", doc.Badge().Text)

	bare := Document{ID: "y", Title: "Y"}
	require.Equal(t, "y", bare.Section())
	require.Equal(t, "Y", bare.Label())
	require.Nil(t, bare.Order())
	require.Nil(t, bare.Badge())
}

func TestFilters(t *testing.T) {
	t.Parallel()

	docs := []Document{
		{ID: "a", Locale: "en", Tab: "t1"},
		{ID: "b", Locale: "en", Tab: "t2", Draft: true},
		{ID: "c", Locale: "de", Tab: "t1"},
	}

	require.Len(t, FilterByLocale(docs, "en"), 2)
	require.Len(t, FilterByTab(docs, "t1"), 2)
	require.Len(t, NonDraft(docs), 2)
	require.Len(t, docs, 3, "filters do not modify input")
}
