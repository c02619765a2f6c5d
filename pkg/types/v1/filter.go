package v1

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// FilterSet is the set of categories selected by the user. Entries are stored
// case folded, so membership is case-insensitive and order does not matter.
// An empty set means no filtering.
type FilterSet map[string]struct{}

func NewFilterSet(categories ...string) FilterSet {
	fs := FilterSet{}
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		fs[foldCategory(c)] = struct{}{}
	}
	return fs
}

// A Caser is stateful, so one is made per call; fetches run off the event loop.
func foldCategory(c string) string {
	return cases.Fold().String(c)
}

func (fs FilterSet) Empty() bool { return len(fs) == 0 }

// Matches reports whether a product of the given category passes the filter.
func (fs FilterSet) Matches(category string) bool {
	if fs.Empty() {
		return true
	}
	_, ok := fs[foldCategory(category)]
	return ok
}

// Has reports whether the category is selected.
func (fs FilterSet) Has(category string) bool {
	_, ok := fs[foldCategory(category)]
	return ok
}

// List returns the folded entries in a stable order, for logging.
func (fs FilterSet) List() []string {
	out := make([]string, 0, len(fs))
	for c := range fs {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
