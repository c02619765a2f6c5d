// Package catalog turns the raw catalog into the ordered product sequence the
// user asked for.
package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/byxorna/storefront/pkg/db"
	"github.com/byxorna/storefront/pkg/logging"
	"github.com/byxorna/storefront/pkg/types/v1"
	"github.com/rs/zerolog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Fetcher retrieves the full catalog from a backend on every call, then
// filters and sorts it.
type Fetcher struct {
	backend db.ProductBackend
	locale  language.Tag
	logger  zerolog.Logger
}

func New(backend db.ProductBackend, locale language.Tag) *Fetcher {
	return &Fetcher{
		backend: backend,
		locale:  locale,
		logger:  logging.NewLogger("catalog"),
	}
}

// Fetch returns the products passing filters, ordered by key. A backend
// failure is returned wrapped; callers detect it with db.IsFetchError.
func (f *Fetcher) Fetch(ctx context.Context, filters v1.FilterSet, key v1.SortKey) ([]v1.Product, error) {
	all, err := f.backend.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to list products: %w", err)
	}

	out := Sort(Filter(all, filters), key, f.locale)
	f.logger.Debug().
		Strs("filters", filters.List()).
		Str("sort", key.String()).
		Int("total", len(all)).
		Int("matching", len(out)).
		Msg("catalog recomputed")
	return out, nil
}

// Filter keeps the products whose category is in filters. An empty set keeps
// everything. The input is not modified.
func Filter(products []v1.Product, filters v1.FilterSet) []v1.Product {
	out := make([]v1.Product, 0, len(products))
	for _, p := range products {
		if filters.Matches(p.Category) {
			out = append(out, p)
		}
	}
	return out
}

// Sort orders products in place by key and returns them. Price is ascending
// and ties keep their catalog order; name uses the collation rules of locale.
func Sort(products []v1.Product, key v1.SortKey, locale language.Tag) []v1.Product {
	switch key {
	case v1.SortByName:
		c := collate.New(locale)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Title, products[j].Title) < 0
		})
	default:
		sort.Stable(v1.ProductsByPrice(products))
	}
	return products
}
