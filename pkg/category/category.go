// Package category holds the fixed destination taxonomy and the derived-count
// logic behind the category browser.
package category

import "errors"

// Category is one entry of the fixed taxonomy. Display order matters and is
// the declaration order of Catalogue.
type Category struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Catalogue is the fixed, ordered category list. Selecting a category always
// triggers a fresh remote query scoped to it; the catalogue itself never
// changes at runtime.
var Catalogue = []Category{
	{Name: "Trekking", Icon: "🥾"},
	{Name: "HimalayanTreks", Icon: "🏔️"},
	{Name: "Lake and River", Icon: "🌊"},
	{Name: "Nature", Icon: "🌿"},
	{Name: "Camping", Icon: "⛺"},
	{Name: "Mountain Climbing", Icon: "🧗‍♂️"},
	{Name: "Spiritual", Icon: "🙏"},
	{Name: "Adventure Sports", Icon: "🏄"},
}

// ErrNoDestinations signals that the selected category has no destinations.
// An explicit signal, not an empty fetch, so the UI can say so.
var ErrNoDestinations = errors.New("no destinations available in this category")

// Valid reports whether name is part of the fixed taxonomy
func Valid(name string) bool {
	for _, c := range Catalogue {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Counts maps every catalogue category to its live destination count. Always
// exactly one entry per catalogue category.
type Counts map[string]int

// CountByCategory annotates each fixed category with the number of
// destinations whose category field exactly matches. Inputs outside the
// taxonomy are ignored, never an error.
func CountByCategory(destinationCategories []string) Counts {
	counts := make(Counts, len(Catalogue))
	for _, c := range Catalogue {
		counts[c.Name] = 0
	}
	for _, name := range destinationCategories {
		if _, ok := counts[name]; ok {
			counts[name]++
		}
	}
	return counts
}

// Total sums all category counts
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// DefaultSelection picks the initial category: the first catalogue entry, in
// fixed order, with a count above zero, or the first entry when every count
// is zero. Never empty for the non-empty catalogue.
func (c Counts) DefaultSelection() string {
	for _, cat := range Catalogue {
		if c[cat.Name] > 0 {
			return cat.Name
		}
	}
	return Catalogue[0].Name
}

// Select validates picking a category for display: unknown names and empty
// categories yield ErrNoDestinations so callers surface an explicit message
// instead of fetching nothing.
func (c Counts) Select(name string) error {
	if !Valid(name) || c[name] == 0 {
		return ErrNoDestinations
	}
	return nil
}
