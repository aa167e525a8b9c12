package content

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/supra-labs/docsnav/internal/helpers"
	"github.com/supra-labs/docsnav/internal/siteconfig"
)

// LoadOptions tune Load.
type LoadOptions struct {
	// Strict turns invalid documents into a load error instead of a skipped entry.
	Strict bool

	// IncludeBody keeps the Markdown body in memory.
	IncludeBody bool

	Logger *slog.Logger
}

// Load walks fsys for Markdown and MDX files and builds a collection of validated
// documents. Files whose name starts with "_" are ignored.
//
// The first path segment selects the locale when it names a configured locale;
// otherwise the document belongs to the default locale.
func Load(fsys fs.FS, cfg *siteconfig.Config, opts LoadOptions) (*Collection, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var docs []Document
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Only process content files
		if d.IsDir() || !helpers.IsContentFile(d.Name()) || strings.HasPrefix(d.Name(), "_") {
			return nil
		}

		doc, err := loadDocument(fsys, p, cfg, opts.IncludeBody)
		if err == nil {
			key := doc.Locale + "\x00" + doc.ID
			if other, dup := seen[key]; dup {
				err = fmt.Errorf("%w: id %q (locale %s) already defined by %s", ErrInvalidDocument, doc.ID, doc.Locale, other)
			} else {
				seen[key] = p
			}
		}

		if err != nil {
			if opts.Strict {
				return fmt.Errorf("%s: %w", p, err)
			}
			// Log warning but continue loading
			logger.Warn("Skipping document",
				slog.String("path", p),
				slog.String("format", helpers.GetPathType(p)),
				slog.String("error", err.Error()))
			return nil
		}

		docs = append(docs, *doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	logger.Debug("Loaded content collection", slog.Int("documents", len(docs)))

	return NewCollection(docs), nil
}

func loadDocument(fsys fs.FS, p string, cfg *siteconfig.Config, includeBody bool) (*Document, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	fm, body, err := ParseFrontmatter(data)
	if err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}

	if err := Validate(fm, siteconfig.DefaultTabID, cfg.IsValidTab); err != nil {
		return nil, err
	}

	locale, relPath := splitLocale(p, cfg)
	doc := &Document{
		ID:              PathToID(relPath),
		Locale:          locale,
		Path:            p,
		RelPath:         relPath,
		Title:           fm.Title,
		Description:     fm.Description,
		Tab:             fm.Tab,
		Sidebar:         fm.Sidebar,
		TableOfContents: fm.TableOfContents,
		Pagefind:        fm.Pagefind,
		MappingKey:      fm.MappingKey,
		Draft:           fm.Draft,
	}
	if includeBody {
		doc.Body = body
	}

	return doc, nil
}

func splitLocale(p string, cfg *siteconfig.Config) (string, string) {
	first, rest, found := strings.Cut(p, "/")
	if !found {
		return cfg.Locales().Default(), p
	}
	if locale, ok := cfg.Locales().Lookup(first); ok {
		return locale, rest
	}
	return cfg.Locales().Default(), p
}

// PathToID converts a content path to a document id.
// Examples:
//   - "overview/index.md" -> "overview"
//   - "build/Getting Started.mdx" -> "build/getting-started"
//   - "index.md" -> "index"
func PathToID(relPath string) string {
	id := strings.TrimSuffix(relPath, path.Ext(relPath))
	id = strings.ToLower(strings.ReplaceAll(id, " ", "-"))
	return strings.TrimSuffix(id, "/index")
}
