package app

import (
	"github.com/byxorna/storefront/pkg/store"
	"github.com/byxorna/storefront/pkg/types/v1"
)

// State is everything the browser knows. It is owned by one Controller and
// only touched from the UI event loop.
type State struct {
	// Products is the full filtered and sorted sequence from the last fetch.
	Products *store.Store[[]v1.Product]
	// Visible is the prefix of Products currently shown.
	Visible *store.Store[[]v1.Product]
	// Loading is true while a filter change (or the initial load) is fetching.
	Loading *store.Store[bool]

	Filters v1.FilterSet
	Sort    v1.SortKey

	// CanLoadMore drives the "load more" affordance.
	CanLoadMore bool
	// MenuOpen is the slide-out filter panel.
	MenuOpen bool
}

func NewState(filters v1.FilterSet, key v1.SortKey) *State {
	if filters == nil {
		filters = v1.NewFilterSet()
	}
	if key == "" {
		key = v1.DefaultSortKey
	}
	return &State{
		Products: store.New[[]v1.Product](nil),
		Visible:  store.New[[]v1.Product](nil),
		Loading:  store.New(false),
		Filters:  filters,
		Sort:     key,
	}
}
