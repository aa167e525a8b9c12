package nav

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/supra-labs/docsnav/internal/content"
)

func sidebarFixture(t *testing.T) (*Navigator, string) {
	t.Helper()

	docs := content.NewCollection([]content.Document{
		doc("x/one", "a", "One"),
		doc("x/two", "a", "Two"),
		doc("y/three", "a", "Three"),
		doc("z/four", "b", "Four"),
	})
	return NewNavigator(testConfig(t), docs, Options{}), "en"
}

func TestBuildSidebarTree(t *testing.T) {
	t.Parallel()

	n, locale := sidebarFixture(t)

	tests := []struct {
		name         string
		depth        int
		wantSections bool
		wantEntries  bool
	}{
		{name: "tabs only", depth: 1},
		{name: "tabs and sections", depth: 2, wantSections: true},
		{name: "full tree", depth: 3, wantSections: true, wantEntries: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tree, err := n.Sidebar(locale, TreeOptions{Depth: tc.depth, ActiveTab: "b"})
			require.NoError(t, err)
			require.Len(t, tree, 2)

			tab := tree[0]
			require.Equal(t, "a", tab.ID)
			require.Equal(t, "Tab A", tab.Title)
			require.Equal(t, "/docs/x/one", tab.FirstPage)
			require.Equal(t, 2, tab.SectionCount)
			require.False(t, tab.Active)
			require.True(t, tree[1].Active)

			if !tc.wantSections {
				require.True(t, tab.HasMore)
				require.Empty(t, tab.Sections)
				return
			}

			require.Len(t, tab.Sections, 2)
			require.Equal(t, "Section X", tab.Sections[0].Title)
			require.Equal(t, "Y", tab.Sections[1].Title)
			require.Equal(t, 2, tab.Sections[0].EntryCount)

			if tc.wantEntries {
				require.Equal(t, []string{"One", "Two"}, texts(tab.Sections[0].Entries))
			} else {
				require.True(t, tab.Sections[0].HasMore)
				require.Empty(t, tab.Sections[0].Entries)
			}
		})
	}
}

func TestBuildSidebarTreeRootTab(t *testing.T) {
	t.Parallel()

	n, locale := sidebarFixture(t)

	tree, err := n.Sidebar(locale, TreeOptions{Depth: 3, RootTab: "b"})
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Equal(t, "b", tree[0].ID)

	_, err = n.Sidebar(locale, TreeOptions{Depth: 3, RootTab: "nope"})
	require.Error(t, err)

	_, err = n.Sidebar(locale, TreeOptions{Depth: 0})
	require.Error(t, err)
}
