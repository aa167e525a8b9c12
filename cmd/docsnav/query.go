package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/supra-labs/docsnav/internal/nav"
	"github.com/supra-labs/docsnav/internal/siteconfig"
)

func newTabsCmd(a *app) *cobra.Command {
	var localeFlag string

	cmd := &cobra.Command{
		Use:   "tabs",
		Short: "List the documentation tabs and their landing pages",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			n, err := a.navigator(false)
			if err != nil {
				return err
			}
			locale := a.resolveLocale(n, localeFlag)
			tabs := n.Tabs(locale)
			firstPages := n.FirstPages(locale)

			if a.settings.Format == formatJSON {
				return writeJSON(a.stdout, map[string]any{"locale": locale, "tabs": tabs, "firstPages": firstPages})
			}

			table := tablewriter.NewWriter(a.stdout)
			table.Header("Tab", "Title", "Sections", "First page")
			for _, tab := range tabs {
				if err := table.Append([]string{tab.ID, tab.Title, strconv.Itoa(len(tab.Sections)), firstPages[tab.ID]}); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
	cmd.Flags().StringVarP(&localeFlag, "locale", "l", "", "Locale to list (default: the default locale)")

	return cmd
}

func newSidebarCmd(a *app) *cobra.Command {
	var localeFlag, tab string

	cmd := &cobra.Command{
		Use:   "sidebar",
		Short: "Print the sidebar of every tab in reading order",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			n, err := a.navigator(false)
			if err != nil {
				return err
			}
			locale := a.resolveLocale(n, localeFlag)

			contents := n.SidebarContent(locale)
			if tab != "" {
				contents = slices.DeleteFunc(contents, func(tc nav.TabContent) bool { return tc.ID != tab })
				if len(contents) == 0 {
					return fmt.Errorf("tab not found: %s", tab)
				}
			}

			if a.settings.Format == formatJSON {
				return writeJSON(a.stdout, contents)
			}

			cfg := n.Config()
			table := tablewriter.NewWriter(a.stdout)
			table.Header("Tab", "Section", "Page", "Link")
			for _, tc := range contents {
				for _, section := range tc.Sections {
					title := cfg.SectionTitle(section, tc.ID, locale)
					for _, entry := range tc.TabSections[section] {
						if err := table.Append([]string{tc.ID, title, entryText(entry), entry.Link}); err != nil {
							return err
						}
					}
				}
			}
			return table.Render()
		},
	}
	cmd.Flags().StringVarP(&localeFlag, "locale", "l", "", "Locale to print (default: the default locale)")
	cmd.Flags().StringVarP(&tab, "tab", "t", "", "Only print this tab")

	return cmd
}

func newAdjacentCmd(a *app) *cobra.Command {
	var localeFlag, tab string

	cmd := &cobra.Command{
		Use:   "adjacent <slug>",
		Short: "Print the previous and next pages of a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := a.navigator(false)
			if err != nil {
				return err
			}
			locale := a.resolveLocale(n, localeFlag)

			id := n.NormalizeSlug(args[0])
			if tab == "" {
				if page, ok := n.Documents().Get(locale, id); ok {
					tab = page.Tab
				}
			}
			adj := n.AdjacentPages(id, locale, tab)

			if a.settings.Format == formatJSON {
				return writeJSON(a.stdout, adj)
			}

			cfg := n.Config()
			table := tablewriter.NewWriter(a.stdout)
			table.Header("", "Title", "Link")
			for _, row := range []struct {
				label string
				ref   *nav.PageRef
			}{
				{cfg.Text(locale, siteconfig.TextPrevPage), adj.Prev},
				{cfg.Text(locale, siteconfig.TextNextPage), adj.Next},
			} {
				title, link := "-", "-"
				if row.ref != nil {
					title, link = row.ref.Title, cfg.Link(row.ref.Slug)
				}
				if err := table.Append([]string{row.label, title, link}); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
	cmd.Flags().StringVarP(&localeFlag, "locale", "l", "", "Locale of the page (default: the default locale)")
	cmd.Flags().StringVarP(&tab, "tab", "t", "", "Tab to walk (default: the tab of the page)")

	return cmd
}

func newFirstPagesCmd(a *app) *cobra.Command {
	var localeFlag string

	cmd := &cobra.Command{
		Use:   "first-pages",
		Short: "Print the landing page of every tab",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			n, err := a.navigator(false)
			if err != nil {
				return err
			}
			locale := a.resolveLocale(n, localeFlag)
			pages := n.FirstPages(locale)

			if a.settings.Format == formatJSON {
				return writeJSON(a.stdout, pages)
			}

			table := tablewriter.NewWriter(a.stdout)
			table.Header("Tab", "First page")
			for _, tab := range n.Tabs(locale) {
				if err := table.Append([]string{tab.ID, pages[tab.ID]}); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
	cmd.Flags().StringVarP(&localeFlag, "locale", "l", "", "Locale to resolve (default: the default locale)")

	return cmd
}

func entryText(e nav.Entry) string {
	if e.Badge != nil {
		return fmt.Sprintf("%s [%s]", e.Text, e.Badge.Text)
	}
	return e.Text
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
