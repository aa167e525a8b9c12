package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/supra-labs/docsnav"
	"github.com/supra-labs/docsnav/internal/content"
	"github.com/supra-labs/docsnav/internal/nav"
	"github.com/supra-labs/docsnav/internal/siteconfig"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// settings are the values read from flags, DOCSNAV_* variables and .docsnav.yml.
type settings struct {
	ContentDir    string   `mapstructure:"content_dir"`
	ConfigDir     string   `mapstructure:"config_dir"`
	DocsRoute     string   `mapstructure:"docs_route"`
	DefaultLocale string   `mapstructure:"default_locale"`
	Locales       []string `mapstructure:"locales"`
	Strict        bool     `mapstructure:"strict"`
	Drafts        bool     `mapstructure:"drafts"`
	Format        string   `mapstructure:"format"`
	Output        string   `mapstructure:"output"`
}

// app carries the state shared by every subcommand.
type app struct {
	v        *viper.Viper
	cfgFile  string
	settings settings
	logger   *slog.Logger
	stdout   io.Writer
	stderr   io.Writer
}

func newRootCmd(logger *slog.Logger, stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), logger: logger, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "docsnav",
		Short: "Navigation index for the documentation site",
		Long: `docsnav orders documentation pages into tabs and sections, resolves
previous/next links and tab landing pages, and serves them to agents over MCP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.initConfig()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is .docsnav.yml in the current directory)")
	flags.String("content-dir", "src/content/docs", "Directory holding the Markdown/MDX pages")
	flags.String("config-dir", "", "Directory holding the navigation datasets (default: bundled datasets)")
	flags.String("docs-route", siteconfig.DefaultDocsRoute, "Route segment prefixed to every page link")
	flags.String("default-locale", "en", "Default locale")
	flags.StringSlice("locales", nil, "Configured locales (default: only the default locale)")
	flags.Bool("strict", false, "Fail on invalid pages instead of skipping them")
	flags.Bool("drafts", false, "Include draft pages in sidebars and landing pages")
	flags.StringP("format", "f", formatTable, "Output format (table, json)")

	for key, flag := range map[string]string{
		"content_dir":    "content-dir",
		"config_dir":     "config-dir",
		"docs_route":     "docs-route",
		"default_locale": "default-locale",
		"locales":        "locales",
		"strict":         "strict",
		"drafts":         "drafts",
		"format":         "format",
	} {
		mustBindPFlag(a.v, key, flags.Lookup(flag))
	}

	root.AddCommand(
		newTabsCmd(a),
		newSidebarCmd(a),
		newAdjacentCmd(a),
		newFirstPagesCmd(a),
		newBuildCmd(a),
		newInspectCmd(a),
		newServeCmd(a),
		newVersionCmd(a),
	)

	return root
}

// mustBindPFlag binds a flag to a viper key. A missing flag is a wiring bug.
func mustBindPFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag for %q: %v", key, err))
	}
}

func (a *app) initConfig() error {
	a.v.SetEnvPrefix("DOCSNAV")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName(".docsnav")
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("can't read config: %w", err)
		}
	} else {
		a.logger.Debug("Using config file", slog.String("path", a.v.ConfigFileUsed()))
	}

	if err := a.v.Unmarshal(&a.settings); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	switch a.settings.Format {
	case formatTable, formatJSON:
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", a.settings.Format, formatTable, formatJSON)
	}

	return nil
}

// loadConfig reads the navigation datasets.
func (a *app) loadConfig() (*siteconfig.Config, error) {
	fsys := docsnav.DefaultConfig()
	if a.settings.ConfigDir != "" {
		fsys = os.DirFS(a.settings.ConfigDir)
	}

	cfg, err := siteconfig.Load(fsys, siteconfig.Settings{
		DocsRoute:     a.settings.DocsRoute,
		DefaultLocale: a.settings.DefaultLocale,
		Locales:       a.settings.Locales,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load site configuration: %w", err)
	}
	return cfg, nil
}

// navigator loads the configuration and the pages. Page bodies are only read
// when includeBody is set.
func (a *app) navigator(includeBody bool) (*nav.Navigator, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	docs, err := content.Load(os.DirFS(a.settings.ContentDir), cfg, content.LoadOptions{
		Strict:      a.settings.Strict,
		IncludeBody: includeBody,
		Logger:      a.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load pages from %s: %w", a.settings.ContentDir, err)
	}

	a.logger.Debug("Loaded documentation",
		slog.String("content_dir", a.settings.ContentDir),
		slog.Int("pages", docs.Len()),
		slog.Any("locales", cfg.Locales().All()))

	return nav.NewNavigator(cfg, docs, nav.Options{IncludeDrafts: a.settings.Drafts}), nil
}

// resolveLocale matches a --locale value, warning when it falls back.
func (a *app) resolveLocale(n *nav.Navigator, requested string) string {
	locale, err := n.ResolveLocale(requested)
	if err != nil {
		a.logger.Warn("Locale not configured, using default",
			slog.String("requested", requested),
			slog.String("locale", locale))
	}
	return locale
}
