package php

import (
	"fmt"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// LocaleOption tunes a LocaleComparer.
type LocaleOption int

const (
	// LocaleIgnoreCase compares case-insensitively.
	LocaleIgnoreCase LocaleOption = 1 << iota
	// LocaleIgnoreDiacritics ignores accents.
	LocaleIgnoreDiacritics
	// LocaleNumeric orders digit runs by value.
	LocaleNumeric
)

// LocaleComparer compares string conversions with the collation rules
// of a culture (SORT_LOCALE_STRING).
type LocaleComparer struct {
	Ctx *Context
	Tag language.Tag

	mu       sync.Mutex
	collator *collate.Collator
}

// NewLocaleComparer creates a comparer for culture, a BCP 47 tag. An
// empty culture uses ctx.Locale.
func NewLocaleComparer(ctx *Context, culture string, opts ...LocaleOption) (*LocaleComparer, error) {
	tag := ctxOr(ctx).Locale
	if culture != "" {
		t, err := language.Parse(culture)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", culture, err)
		}
		tag = t
	}
	var set LocaleOption
	for _, o := range opts {
		set |= o
	}
	var copts []collate.Option
	if set&LocaleIgnoreCase != 0 {
		copts = append(copts, collate.IgnoreCase)
	}
	if set&LocaleIgnoreDiacritics != 0 {
		copts = append(copts, collate.IgnoreDiacritics)
	}
	if set&LocaleNumeric != 0 {
		copts = append(copts, collate.Numeric)
	}
	return &LocaleComparer{
		Ctx:      ctx,
		Tag:      tag,
		collator: collate.New(tag, copts...),
	}, nil
}

// Compare implements Comparer.
func (c *LocaleComparer) Compare(x, y Value) int {
	a, b := x.ToString(c.Ctx), y.ToString(c.Ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.collator.CompareString(a, b)
}
