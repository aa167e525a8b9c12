package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFrontmatter(t *testing.T) {
	t.Parallel()

	src := "---\ntitle: Intro\ntab: overview\nsidebar:\n  label: Start here\n  order: 2\n  badge:\n    text: New\n---\n\n# Intro\n"
	fm, body, err := ParseFrontmatter([]byte(src))
	require.NoError(t, err)

	require.Equal(t, "Intro", fm.Title)
	require.Equal(t, "overview", fm.Tab)
	require.NotNil(t, fm.Sidebar)
	require.Equal(t, "Start here", fm.Sidebar.Label)
	require.NotNil(t, fm.Sidebar.Order)
	require.InDelta(t, 2.0, *fm.Sidebar.Order, 0)
	require.Equal(t, "New", fm.Sidebar.Badge.Text)
	require.Equal(t, "# Intro", body)
}

func TestParseFrontmatterCRLF(t *testing.T) {
	t.Parallel()

	fm, body, err := ParseFrontmatter([]byte("---\r\ntitle: Windows\r\n---\r\nbody\r\n"))
	require.NoError(t, err)
	require.Equal(t, "Windows", fm.Title)
	require.Equal(t, "body", body)
}

func TestParseFrontmatterMissing(t *testing.T) {
	t.Parallel()

	fm, body, err := ParseFrontmatter([]byte("# Just markdown\n"))
	require.NoError(t, err)
	require.Empty(t, fm.Title)
	require.Equal(t, "# Just markdown\n", body)
}

func TestParseFrontmatterUnterminated(t *testing.T) {
	t.Parallel()

	_, _, err := ParseFrontmatter([]byte("---\ntitle: Open\n"))
	require.Error(t, err)
}

func TestParseFrontmatterDuplicateKeys(t *testing.T) {
	t.Parallel()

	src := "---\ntitle: First\ndraft: true\ntitle: Second\n---\n"
	fm, _, err := ParseFrontmatter([]byte(src))
	require.NoError(t, err)
	require.Equal(t, "Second", fm.Title)
	require.True(t, fm.Draft)
}

func TestParseFrontmatterInvalidYAML(t *testing.T) {
	t.Parallel()

	_, _, err := ParseFrontmatter([]byte("---\ntitle: [oops\n---\n"))
	require.Error(t, err)
}

func TestDedupeFrontmatterKeepsNestedBlocks(t *testing.T) {
	t.Parallel()

	raw := "sidebar:\n  order: 1\ntitle: A\nsidebar:\n  order: 2"
	require.Equal(t, "title: A\nsidebar:\n  order: 2", dedupeFrontmatter(raw))
}
