package content

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const (
	minHeadingLevel = 1
	maxHeadingLevel = 6
)

var badgeVariants = []string{VariantNote, VariantTip, VariantCaution, VariantDanger, VariantInfo}

// Validate checks fm against the content schema and applies its defaults:
// a missing tab becomes defaultTab and a badge without variant becomes "note".
// isValidTab decides which tab values are allowed.
func Validate(fm *Frontmatter, defaultTab string, isValidTab func(string) bool) error {
	var errs []error

	if strings.TrimSpace(fm.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}

	if fm.Tab == "" {
		fm.Tab = defaultTab
	}
	if isValidTab != nil && !isValidTab(fm.Tab) {
		errs = append(errs, fmt.Errorf("tab %q is not a configured tab", fm.Tab))
	}

	if fm.Sidebar != nil && fm.Sidebar.Badge != nil {
		badge := fm.Sidebar.Badge
		if badge.Text == "" {
			errs = append(errs, errors.New("sidebar.badge.text is required"))
		}
		if badge.Variant == "" {
			badge.Variant = VariantNote
		}
		if !slices.Contains(badgeVariants, badge.Variant) {
			errs = append(errs, fmt.Errorf("sidebar.badge.variant %q must be one of %s",
				badge.Variant, strings.Join(badgeVariants, ", ")))
		}
	}

	if toc := fm.TableOfContents; toc != nil {
		errs = append(errs, checkHeadingLevel("tableOfContents.minHeadingLevel", toc.MinHeadingLevel))
		errs = append(errs, checkHeadingLevel("tableOfContents.maxHeadingLevel", toc.MaxHeadingLevel))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return nil
}

func checkHeadingLevel(field string, level *int) error {
	if level == nil {
		return nil
	}
	if *level < minHeadingLevel || *level > maxHeadingLevel {
		return fmt.Errorf("%s must be between %d and %d, got %d", field, minHeadingLevel, maxHeadingLevel, *level)
	}
	return nil
}
