package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/byxorna/storefront/pkg/db"
	"github.com/byxorna/storefront/pkg/types/v1"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type fakeBackend struct {
	products []v1.Product
	err      error
	calls    int
}

func (b *fakeBackend) List(ctx context.Context) ([]v1.Product, error) {
	b.calls++
	if b.err != nil {
		return nil, b.err
	}
	// hand out a copy, like a fresh decode would
	return append([]v1.Product(nil), b.products...), nil
}

func (b *fakeBackend) Endpoint() string { return "fake://catalog" }

var fixture = []v1.Product{
	{ID: "1", Title: "Zip hoodie", Price: 20, Category: "a"},
	{ID: "2", Title: "äpple watch", Price: 5, Category: "B"},
	{ID: "3", Title: "Apron", Price: 20, Category: "c"},
	{ID: "4", Title: "banner", Price: 1.5, Category: "A"},
	{ID: "5", Title: "Ørsted lamp", Price: 5, Category: "b"},
	{ID: "6", Title: "apple pie", Price: 0, Category: "c"},
}

func ids(ps []v1.Product) []v1.ID {
	out := make([]v1.ID, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestFetchCaseInsensitiveFilter(t *testing.T) {
	f := New(&fakeBackend{products: fixture}, language.English)

	got, err := f.Fetch(context.Background(), v1.NewFilterSet("A"), v1.SortByPrice)
	require.NoError(t, err)
	if diff := cmp.Diff([]v1.ID{"4", "1"}, ids(got)); diff != "" {
		t.Fatalf("unexpected products (-want +got):\n%s", diff)
	}
}

func TestFetchFilterMatchesAnyEntry(t *testing.T) {
	f := New(&fakeBackend{products: fixture}, language.English)

	for _, filters := range []v1.FilterSet{
		v1.NewFilterSet(),
		v1.NewFilterSet("a", "b"),
		v1.NewFilterSet("C"),
		v1.NewFilterSet("nope"),
	} {
		got, err := f.Fetch(context.Background(), filters, v1.SortByName)
		require.NoError(t, err)

		want := map[v1.ID]bool{}
		for _, p := range fixture {
			if filters.Empty() || filters.Has(p.Category) {
				want[p.ID] = true
			}
		}
		assert.Len(t, got, len(want), "filters %v", filters.List())
		for _, p := range got {
			assert.True(t, want[p.ID], "product %s should not pass %v", p.ID, filters.List())
		}
	}
}

func TestFetchSortByPriceStableNonDecreasing(t *testing.T) {
	f := New(&fakeBackend{products: fixture}, language.English)

	got, err := f.Fetch(context.Background(), v1.NewFilterSet(), v1.SortByPrice)
	require.NoError(t, err)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Price, got[i].Price)
	}
	// ties (5 and 20) keep catalog order
	if diff := cmp.Diff([]v1.ID{"6", "4", "2", "5", "1", "3"}, ids(got)); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestFetchSortByNameUsesCollation(t *testing.T) {
	f := New(&fakeBackend{products: fixture}, language.English)

	got, err := f.Fetch(context.Background(), v1.NewFilterSet(), v1.SortByName)
	require.NoError(t, err)

	c := collate.New(language.English)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, c.CompareString(got[i-1].Title, got[i].Title), 0,
			"%q should not sort after %q", got[i-1].Title, got[i].Title)
	}
	// case and diacritics do not push titles to the end the way byte order would
	assert.Equal(t, "apple pie", got[0].Title)
	assert.Equal(t, "Zip hoodie", got[len(got)-1].Title)
}

func TestFetchAlwaysHitsBackend(t *testing.T) {
	b := &fakeBackend{products: fixture}
	f := New(b, language.English)

	for i := 0; i < 3; i++ {
		_, err := f.Fetch(context.Background(), v1.NewFilterSet(), v1.SortByPrice)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, b.calls)
}

func TestFetchPropagatesFetchError(t *testing.T) {
	b := &fakeBackend{err: &db.FetchError{Endpoint: "fake://catalog", StatusCode: 500, Err: db.ErrUnexpectedStatus}}
	f := New(b, language.English)

	_, err := f.Fetch(context.Background(), v1.NewFilterSet(), v1.SortByPrice)
	require.Error(t, err)
	assert.True(t, db.IsFetchError(err))
	assert.True(t, errors.Is(err, db.ErrUnexpectedStatus))
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	in := append([]v1.Product(nil), fixture...)
	out := Filter(in, v1.NewFilterSet("b"))
	Sort(out, v1.SortByName, language.English)
	if diff := cmp.Diff(fixture, in); diff != "" {
		t.Fatalf("input was modified:\n%s", diff)
	}
}

func TestScenarioCaseMismatchIncludesAllLowercase(t *testing.T) {
	var products []v1.Product
	for i, cat := range []string{"a", "b", "c", "a", "b", "c", "a"} {
		products = append(products, v1.Product{ID: v1.ID(fmt.Sprint(i)), Title: fmt.Sprintf("item %d", i), Price: float64(i), Category: cat})
	}
	f := New(&fakeBackend{products: products}, language.English)

	got, err := f.Fetch(context.Background(), v1.NewFilterSet("A"), v1.SortByPrice)
	require.NoError(t, err)
	assert.Equal(t, []v1.ID{"0", "3", "6"}, ids(got))
}
