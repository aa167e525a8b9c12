package siteconfig

import (
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tabs returns the sidebar tabs of locale in configured order.
func (c *Config) Tabs(locale string) []Tab {
	return slices.Clone(c.SidebarNavData(locale).Tabs)
}

// TabByID finds a tab by id for locale.
func (c *Config) TabByID(tabID, locale string) (Tab, bool) {
	if _, ok := c.tabIndex[locale]; !ok {
		locale = c.locales.Default()
	}

	i, ok := c.tabIndex[locale][tabID]
	if !ok {
		return Tab{}, false
	}
	return c.sidebar[locale].Tabs[i], true
}

// TabSections returns the configured sections of a tab, or nil for an unknown tab.
func (c *Config) TabSections(tabID, locale string) []Section {
	tab, ok := c.TabByID(tabID, locale)
	if !ok {
		return nil
	}
	return slices.Clone(tab.Sections)
}

// OrderedSectionIDs returns the section ids of a tab in navigation order.
func (c *Config) OrderedSectionIDs(tabID, locale string) []string {
	sections := c.TabSections(tabID, locale)
	ids := make([]string, 0, len(sections))
	for _, section := range sections {
		ids = append(ids, section.ID)
	}
	return ids
}

// SectionByID finds a section of a tab.
func (c *Config) SectionByID(sectionID, tabID, locale string) (Section, bool) {
	tab, ok := c.TabByID(tabID, locale)
	if !ok {
		return Section{}, false
	}

	for _, section := range tab.Sections {
		if section.ID == sectionID {
			return section, true
		}
	}
	return Section{}, false
}

// SectionTitle returns the configured title of a section, or a title derived from its id.
func (c *Config) SectionTitle(sectionID, tabID, locale string) string {
	if section, ok := c.SectionByID(sectionID, tabID, locale); ok && section.Title != "" {
		return section.Title
	}
	return TitleFromID(sectionID)
}

// TitleFromID derives a display title from a hyphenated id.
// Example: "getting-started" -> "Getting Started".
func TitleFromID(id string) string {
	words := strings.Split(id, "-")
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		if size == 0 {
			continue
		}
		// Full case mapping, so a leading rune may expand ("ß" -> "SS").
		words[i] = cases.Upper(language.Und).String(string(r)) + word[size:]
	}
	return strings.Join(words, " ")
}
