package items

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOrder selects title ordering for the derived view.
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// Toggle flips between ascending and descending.
func (o SortOrder) Toggle() SortOrder {
	if o == SortAsc {
		return SortDesc
	}
	return SortAsc
}

func (o SortOrder) String() string {
	if o == SortDesc {
		return "desc"
	}
	return "asc"
}

// ParseSortOrder accepts "asc" or "desc" (case-insensitive). It reports
// false for anything else.
func ParseSortOrder(s string) (SortOrder, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return SortAsc, true
	case "desc":
		return SortDesc, true
	}
	return SortAsc, false
}

// Preferences are the user-controlled inputs of the derived view.
type Preferences struct {
	Query string
	Order SortOrder
}

// DefaultLocale is used for title comparison when none is configured.
var DefaultLocale = language.English

// Derive filters list by a case-insensitive substring match of prefs.Query
// against the title and stable-sorts the result by title using the
// collation rules of DefaultLocale. The input is never modified.
func Derive(list []Item, prefs Preferences) []Item {
	return DeriveLocale(list, prefs, DefaultLocale)
}

// DeriveLocale is Derive with an explicit collation locale.
func DeriveLocale(list []Item, prefs Preferences, tag language.Tag) []Item {
	out := make([]Item, 0, len(list))
	query := strings.ToLower(prefs.Query)
	for _, it := range list {
		if query == "" || strings.Contains(strings.ToLower(it.Title), query) {
			out = append(out, it)
		}
	}

	// Collators keep scratch buffers, so each call gets its own.
	col := collate.New(tag)
	cmp := func(a, b Item) int { return col.CompareString(a.Title, b.Title) }
	if prefs.Order == SortDesc {
		cmp = func(a, b Item) int { return col.CompareString(b.Title, a.Title) }
	}
	slices.SortStableFunc(out, cmp)
	return out
}

// Deriver memoizes the most recent derivation so that unchanged inputs
// return the identical slice. The collection is identified by a revision
// number that the owner bumps on every change.
type Deriver struct {
	Locale language.Tag

	valid    bool
	revision uint64
	prefs    Preferences
	locale   language.Tag
	result   []Item
}

// Derive returns the derived view for (list, prefs). When revision and
// prefs match the previous call the previous slice is returned as is.
func (d *Deriver) Derive(revision uint64, list []Item, prefs Preferences) []Item {
	tag := d.Locale
	if tag == language.Und {
		tag = DefaultLocale
	}
	if d.valid && d.revision == revision && d.prefs == prefs && d.locale == tag {
		return d.result
	}
	d.result = DeriveLocale(list, prefs, tag)
	d.revision = revision
	d.prefs = prefs
	d.locale = tag
	d.valid = true
	return d.result
}
