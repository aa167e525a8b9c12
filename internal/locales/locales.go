// Package locales holds the fixed set of site locales and their language tags.
package locales

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnknownLocale is returned when a locale is not part of the configured set.
var ErrUnknownLocale = errors.New("unknown locale")

// Set is an immutable list of configured locales with one default.
type Set struct {
	def     string
	all     []string
	tags    map[string]language.Tag
	matcher language.Matcher
}

// NewSet validates the configured locales. An empty list means the default locale only.
// Locale identifiers are normalised to their BCP 47 form (e.g. "pt_br" -> "pt-BR").
func NewSet(defaultLocale string, locales []string) (*Set, error) {
	def, _, err := normalize(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("invalid default locale: %w", err)
	}

	if len(locales) == 0 {
		locales = []string{def}
	}

	set := &Set{
		def:  def,
		all:  make([]string, 0, len(locales)),
		tags: make(map[string]language.Tag, len(locales)),
	}

	tags := make([]language.Tag, 0, len(locales))
	for _, raw := range locales {
		id, tag, err := normalize(raw)
		if err != nil {
			return nil, err
		}
		if _, dup := set.tags[id]; dup {
			return nil, fmt.Errorf("duplicate locale %q", id)
		}
		set.all = append(set.all, id)
		set.tags[id] = tag
		tags = append(tags, tag)
	}

	if _, ok := set.tags[def]; !ok {
		return nil, fmt.Errorf("default locale %q is not in the configured locales %v", def, set.all)
	}

	set.matcher = language.NewMatcher(tags)
	return set, nil
}

func normalize(raw string) (string, language.Tag, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", language.Und, errors.New("empty locale")
	}

	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return "", language.Und, fmt.Errorf("invalid locale %q: %w", raw, err)
	}
	return tag.String(), tag, nil
}

// Default returns the default locale.
func (s *Set) Default() string {
	return s.def
}

// All returns the configured locales in configuration order.
func (s *Set) All() []string {
	return slices.Clone(s.all)
}

// Has reports whether locale is configured.
func (s *Set) Has(locale string) bool {
	_, ok := s.tags[locale]
	return ok
}

// Lookup maps a raw identifier such as a directory or file name ("pt-br",
// "pt_BR") onto the configured locale id it normalizes to.
func (s *Set) Lookup(raw string) (string, bool) {
	if s.Has(raw) {
		return raw, true
	}
	id, _, err := normalize(raw)
	if err != nil || !s.Has(id) {
		return "", false
	}
	return id, true
}

// Tag returns the language tag of locale, or the default locale's tag.
func (s *Set) Tag(locale string) language.Tag {
	if tag, ok := s.tags[locale]; ok {
		return tag
	}
	return s.tags[s.def]
}

// Resolve returns the default locale when locale is empty, otherwise locale itself.
func (s *Set) Resolve(locale string) string {
	if locale == "" {
		return s.def
	}
	return locale
}

// Match maps a requested locale (e.g. "en-GB") onto a configured one (e.g. "en").
// When nothing matches, the default locale is returned along with ErrUnknownLocale.
func (s *Set) Match(requested string) (string, error) {
	if requested == "" {
		return s.def, nil
	}
	if s.Has(requested) {
		return requested, nil
	}

	tag, err := language.Parse(strings.ReplaceAll(requested, "_", "-"))
	if err != nil {
		return s.def, fmt.Errorf("%w: %s", ErrUnknownLocale, requested)
	}

	_, index, confidence := s.matcher.Match(tag)
	if confidence == language.No || index < 0 || index >= len(s.all) {
		return s.def, fmt.Errorf("%w: %s", ErrUnknownLocale, requested)
	}
	return s.all[index], nil
}
