package contact

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// View selects which partition of the contact list is visible
type View string

const (
	ViewAll      View = "all"
	ViewFavorite View = "favorite"
	ViewTrash    View = "trash"
	ViewLabel    View = "label"
)

// Sort orders for the name sort
const (
	SortAZ = "A-Z"
	SortZA = "Z-A"
)

// ViewState is the serializable selection the presentation layer owns.
// ComputeView never mutates it.
type ViewState struct {
	View   View
	Label  string
	Search string
	Sort   string
}

// collator compares names with proper collation rules instead of raw
// byte order, ignoring case differences
var collator = collate.New(language.Indonesian, collate.IgnoreCase)

// ComputeView returns the visible subset of contacts for the given view
// state: trash partition, favorite/label filters, name-or-email search,
// then a stable locale-aware name sort. The input slice is not modified.
func ComputeView(all []Contact, state ViewState) []Contact {
	var data []Contact
	for _, c := range all {
		if c.Deleted() != (state.View == ViewTrash) {
			continue
		}
		data = append(data, c)
	}

	if state.View == ViewFavorite {
		data = keep(data, func(c Contact) bool { return c.Favorite })
	}

	if state.View == ViewLabel {
		data = keep(data, func(c Contact) bool { return c.Label == state.Label })
	}

	if state.Search != "" {
		keyword := strings.ToLower(state.Search)
		data = keep(data, func(c Contact) bool {
			return strings.Contains(strings.ToLower(c.Name), keyword) ||
				strings.Contains(strings.ToLower(c.Email), keyword)
		})
	}

	sort.SliceStable(data, func(i, j int) bool {
		cmp := collator.CompareString(data[i].Name, data[j].Name)
		if state.Sort == SortZA {
			return cmp > 0
		}
		return cmp < 0
	})

	return data
}

func keep(data []Contact, match func(Contact) bool) []Contact {
	kept := data[:0]
	for _, c := range data {
		if match(c) {
			kept = append(kept, c)
		}
	}
	return kept
}
