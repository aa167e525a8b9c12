package siteconfig

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/supra-labs/docsnav/internal/locales"
)

// UI text keys shipped with the default catalogs.
const (
	TextPrevPage   = "prevPage"
	TextNextPage   = "nextPage"
	TextOnThisPage = "onThisPage"
	TextDocsHome   = "docsHome"
)

const i18nDir = "i18n"

func loadBundle(fsys fs.FS, set *locales.Set) (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(set.Tag(set.Default()))
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := localeEntries(fsys, i18nDir, set, ".toml")
	if err != nil {
		return nil, err
	}

	for _, locale := range set.All() {
		file, ok := files[locale]
		if !ok {
			continue
		}

		name := path.Join(i18nDir, file)
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read translations %s: %w", name, err)
		}
		// The file name carries the language, so parse under the configured id.
		if _, err := bundle.ParseMessageFileBytes(data, locale+".toml"); err != nil {
			return nil, fmt.Errorf("failed to load translations %s: %w", name, err)
		}
	}

	return bundle, nil
}

// Text returns the UI string key for locale. Missing translations fall back to
// the default locale and finally to the key itself.
func (c *Config) Text(locale, key string) string {
	localizer := i18n.NewLocalizer(c.bundle, locale, c.locales.Default())

	// A fallback translation is returned together with a not-found error.
	msg, _ := localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if msg == "" {
		return key
	}
	return msg
}

// Texts resolves several keys at once.
func (c *Config) Texts(locale string, keys ...string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		out[key] = c.Text(locale, key)
	}
	return out
}
