package model

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is the collation locale used when none is configured.
// "und" selects the root collation order.
const DefaultLocale = "und"

// Collator orders display names the way people expect to read them:
// case- and accent-insensitive, with digit runs compared by numeric value
// ("user2" before "user10").
//
// The underlying collate.Collator keeps scratch buffers, so calls are
// serialized with a mutex.
type Collator struct {
	mu     sync.Mutex
	coll   *collate.Collator
	locale language.Tag
}

// NewCollator creates a Collator for the given BCP 47 locale.
// An empty locale selects DefaultLocale.
func NewCollator(locale string) (*Collator, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Collator{
		coll:   collate.New(tag, collate.Loose, collate.Numeric),
		locale: tag,
	}, nil
}

// MustCollator is like NewCollator but panics on an invalid locale.
func MustCollator(locale string) *Collator {
	c, err := NewCollator(locale)
	if err != nil {
		panic(err)
	}
	return c
}

// Locale returns the collation locale.
func (c *Collator) Locale() language.Tag {
	return c.locale
}

// Compare returns -1, 0 or 1. Names the collator considers equal
// ("alice" and "Alice") are ordered by their bytes so that the result is
// total and the output stable between runs.
func (c *Collator) Compare(a, b string) int {
	c.mu.Lock()
	r := c.coll.CompareString(a, b)
	c.mu.Unlock()
	if r != 0 {
		return r
	}
	return strings.Compare(a, b)
}

// SortStrings sorts names in place.
func (c *Collator) SortStrings(names []string) {
	slices.SortFunc(names, c.Compare)
}

// SortIdentities sorts identities in place by name.
func (c *Collator) SortIdentities(ids []Identity) {
	slices.SortFunc(ids, func(a, b Identity) int {
		return c.Compare(a.Name, b.Name)
	})
}
