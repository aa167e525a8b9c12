package nav

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/supra-labs/docsnav/internal/content"
	"github.com/supra-labs/docsnav/internal/siteconfig"
)

const twoTabSidebar = `tabs:
  - id: a
    title: Tab A
    sections:
      - id: x
        title: Section X
      - id: y
  - id: b
    title: Tab B
    sections:
      - id: z
`

func loadConfig(t *testing.T, sidebar string) *siteconfig.Config {
	t.Helper()

	fsys := fstest.MapFS{
		"en/sidebarNavData.yaml": {Data: []byte(sidebar)},
		"i18n/en.toml":           {Data: []byte("prevPage = \"Previous\"\nnextPage = \"Next\"\n")},
	}
	cfg, err := siteconfig.Load(fsys, siteconfig.Settings{DefaultLocale: "en", Locales: []string{"en", "de"}})
	require.NoError(t, err)
	return cfg
}

func testConfig(t *testing.T) *siteconfig.Config {
	t.Helper()
	return loadConfig(t, twoTabSidebar)
}

type docOption func(*content.Document)

func withOrder(order float64) docOption {
	return func(d *content.Document) {
		if d.Sidebar == nil {
			d.Sidebar = &content.Sidebar{}
		}
		d.Sidebar.Order = &order
	}
}

func withLabel(label string) docOption {
	return func(d *content.Document) {
		if d.Sidebar == nil {
			d.Sidebar = &content.Sidebar{}
		}
		d.Sidebar.Label = label
	}
}

func withLocale(locale string) docOption {
	return func(d *content.Document) { d.Locale = locale }
}

func asDraft() docOption {
	return func(d *content.Document) { d.Draft = true }
}

func doc(id, tab, title string, opts ...docOption) content.Document {
	d := content.Document{ID: id, Locale: "en", Tab: tab, Title: title}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func texts(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Text)
	}
	return out
}

func ids(docs []content.Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ID)
	}
	return out
}
