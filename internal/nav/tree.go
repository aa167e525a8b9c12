package nav

import (
	"fmt"

	"github.com/supra-labs/docsnav/internal/siteconfig"
)

// TabNode is a tab with its sections, as rendered in the sidebar.
type TabNode struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	Icon         string         `json:"icon,omitempty"`
	FirstPage    string         `json:"first_page"`
	Active       bool           `json:"active"`
	SectionCount int            `json:"section_count"`
	HasMore      bool           `json:"has_more,omitempty"`
	Sections     []*SectionNode `json:"sections,omitempty"`
}

// SectionNode is a sidebar section with its entries.
type SectionNode struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	EntryCount int     `json:"entry_count"`
	HasMore    bool    `json:"has_more,omitempty"`
	Entries    []Entry `json:"entries,omitempty"`
}

// TreeOptions controls BuildSidebarTree.
type TreeOptions struct {
	// RootTab restricts the tree to one tab when set.
	RootTab string

	// ActiveTab marks the tab shown on first render.
	ActiveTab string

	// Depth counts the levels returned: 1 tabs, 2 sections, 3 entries.
	Depth int
}

// BuildSidebarTree joins tab metadata, sidebar content and landing pages into
// a depth-limited tree.
func BuildSidebarTree(cfg *siteconfig.Config, locale string, contents []TabContent, firstPages map[string]string, opts TreeOptions) ([]*TabNode, error) {
	if opts.Depth < 1 {
		return nil, fmt.Errorf("depth must be at least 1")
	}

	roots := contents
	if opts.RootTab != "" {
		roots = nil
		for _, tc := range contents {
			if tc.ID == opts.RootTab {
				roots = []TabContent{tc}
				break
			}
		}
		if roots == nil {
			return nil, fmt.Errorf("tab not found: %s", opts.RootTab)
		}
	}

	ids := make([]string, 0, len(roots))
	for _, tc := range roots {
		ids = append(ids, tc.ID)
	}
	buttons, _ := TabControls(ids, opts.ActiveTab)

	nodes := make([]*TabNode, 0, len(roots))
	for i, tc := range roots {
		node := buildTabNode(cfg, locale, tc, opts.Depth)
		node.FirstPage = firstPages[tc.ID]
		node.Active = buttons[i].Selected
		nodes = append(nodes, node)
	}

	return nodes, nil
}

func buildTabNode(cfg *siteconfig.Config, locale string, tc TabContent, depth int) *TabNode {
	node := &TabNode{
		ID:           tc.ID,
		Title:        siteconfig.TitleFromID(tc.ID),
		SectionCount: len(tc.Sections),
	}
	if tab, ok := cfg.TabByID(tc.ID, locale); ok {
		if tab.Title != "" {
			node.Title = tab.Title
		}
		node.Description = tab.Description
		node.Icon = tab.Icon
	}

	if len(tc.Sections) == 0 {
		return node
	}
	if depth < 2 {
		node.HasMore = true
		return node
	}

	node.Sections = make([]*SectionNode, 0, len(tc.Sections))
	for _, id := range tc.Sections {
		entries := tc.TabSections[id]
		section := &SectionNode{
			ID:         id,
			Title:      cfg.SectionTitle(id, tc.ID, locale),
			EntryCount: len(entries),
		}
		if depth >= 3 {
			section.Entries = entries
		} else {
			section.HasMore = len(entries) > 0
		}
		node.Sections = append(node.Sections, section)
	}

	return node
}
