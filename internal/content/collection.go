package content

import "slices"

// Collection is an immutable set of documents with a per-locale id index.
type Collection struct {
	docs []Document
	byID map[string]map[string]int
}

// NewCollection indexes docs. The slice is copied.
func NewCollection(docs []Document) *Collection {
	c := &Collection{
		docs: slices.Clone(docs),
		byID: make(map[string]map[string]int),
	}

	for i, doc := range c.docs {
		if c.byID[doc.Locale] == nil {
			c.byID[doc.Locale] = make(map[string]int)
		}
		if _, exists := c.byID[doc.Locale][doc.ID]; !exists {
			c.byID[doc.Locale][doc.ID] = i
		}
	}

	return c
}

// Len returns the number of documents.
func (c *Collection) Len() int {
	return len(c.docs)
}

// All returns a copy of every document in load order.
func (c *Collection) All() []Document {
	return slices.Clone(c.docs)
}

// Get finds a document by locale and id.
func (c *Collection) Get(locale, id string) (Document, bool) {
	i, ok := c.byID[locale][id]
	if !ok {
		return Document{}, false
	}
	return c.docs[i], true
}

// ByLocale returns the documents of locale in load order.
func (c *Collection) ByLocale(locale string) []Document {
	return FilterByLocale(c.docs, locale)
}

// FilterByLocale returns the documents belonging to locale.
func FilterByLocale(docs []Document, locale string) []Document {
	return filter(docs, func(d Document) bool { return d.Locale == locale })
}

// FilterByTab returns the documents assigned to tabID.
func FilterByTab(docs []Document, tabID string) []Document {
	return filter(docs, func(d Document) bool { return d.Tab == tabID })
}

// NonDraft returns the documents that are not drafts.
func NonDraft(docs []Document) []Document {
	return filter(docs, func(d Document) bool { return !d.Draft })
}

func filter(docs []Document, keep func(Document) bool) []Document {
	out := make([]Document, 0, len(docs))
	for _, doc := range docs {
		if keep(doc) {
			out = append(out, doc)
		}
	}
	return out
}
