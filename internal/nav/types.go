// Package nav orders documentation entries into sidebar tabs and sections and
// resolves previous/next links and per-tab landing pages.
//
// Every function is a pure transformation of its inputs: nothing here mutates
// the configuration or the caller's document slices.
package nav

import "github.com/supra-labs/docsnav/internal/content"

// Entry is a sidebar link to one document.
type Entry struct {
	Text  string         `json:"text"`
	Link  string         `json:"link"`
	Order *float64       `json:"order,omitempty"`
	Badge *content.Badge `json:"badge,omitempty"`
}

// SectionGroups holds the documents of one tab grouped by section.
type SectionGroups struct {
	// Sections lists the section ids in display order.
	Sections []string `json:"sections"`

	// DocsBySection maps a section id to its ordered entries.
	DocsBySection map[string][]Entry `json:"docsBySection"`
}

// TabContent is the sidebar content of one tab.
type TabContent struct {
	ID          string             `json:"id"`
	Sections    []string           `json:"sections"`
	TabSections map[string][]Entry `json:"tabSections"`
}

// PageRef points at a neighbouring document.
type PageRef struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// Adjacent holds the previous and next documents; either may be nil.
type Adjacent struct {
	Prev *PageRef `json:"prev"`
	Next *PageRef `json:"next"`
}

func newEntry(doc content.Document, link string) Entry {
	return Entry{
		Text:  doc.Label(),
		Link:  link,
		Order: doc.Order(),
		Badge: doc.Badge(),
	}
}

func newPageRef(doc content.Document) *PageRef {
	return &PageRef{Slug: doc.ID, Title: doc.Label()}
}
