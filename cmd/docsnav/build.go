package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/supra-labs/docsnav/internal/buildinfo"
	"github.com/supra-labs/docsnav/internal/nav"
)

const defaultIndexPath = "dist/navigation.json"

func newBuildCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the navigation of every locale to navigation.json",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			n, err := a.navigator(false)
			if err != nil {
				return err
			}

			output := a.settings.Output
			a.logger.Info("Building navigation index", slog.String("output", output))

			idx := nav.BuildIndex(n, "docsnav "+buildinfo.Version)
			if err := idx.WriteJSON(output); err != nil {
				return fmt.Errorf("failed to write navigation index: %w", err)
			}

			a.logger.Info("Navigation index written",
				slog.String("output", output),
				slog.Int("locales", len(idx.Locales)),
				slog.Int("pages", n.Documents().Len()))
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", defaultIndexPath, "Path of the generated index")
	mustBindPFlag(a.v, "output", cmd.Flags().Lookup("output"))

	return cmd
}

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <navigation.json>",
		Short: "Summarize a generated navigation index",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			//nolint:forbidigo // Reading the index named on the command line.
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read index: %w", err)
			}

			idx, err := nav.LoadJSON(data)
			if err != nil {
				return err
			}

			if a.settings.Format == formatJSON {
				return writeJSON(a.stdout, idx)
			}

			table := tablewriter.NewWriter(a.stdout)
			table.Header("Locale", "Default", "Tabs", "Pages", "Links")
			for _, locale := range idx.LocaleNames() {
				li := idx.Locales[locale]
				if err := table.Append([]string{
					locale,
					strconv.FormatBool(locale == idx.DefaultLocale),
					strconv.Itoa(len(li.Tabs)),
					strconv.Itoa(len(li.Adjacent)),
					strconv.Itoa(len(idx.ByLink[locale])),
				}); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
}
