package model

import (
	"context"
	"testing"

	"github.com/byxorna/storefront/pkg/app"
	"github.com/byxorna/storefront/pkg/catalog"
	"github.com/byxorna/storefront/pkg/types/v1"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type fakeFetcher struct {
	products []v1.Product
}

func (f *fakeFetcher) Fetch(ctx context.Context, filters v1.FilterSet, key v1.SortKey) ([]v1.Product, error) {
	all := append([]v1.Product(nil), f.products...)
	return catalog.Sort(catalog.Filter(all, filters), key, language.English), nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loaded returns a model whose initial fetch of n products has been applied.
func loaded(t *testing.T, n int) (Model, *app.Controller) {
	t.Helper()
	all := products(n)
	all[0].Category = "b"
	ctrl := app.NewController(context.Background(), app.NewState(nil, ""), &fakeFetcher{products: all}, app.Options{})
	m := New(ctrl, []string{"a", "b"})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	msg := ctrl.Init()()
	next, _ = m.Update(msg)
	return next.(Model), ctrl
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestModelInitialLoad(t *testing.T) {
	m, ctrl := loaded(t, 25)
	assert.False(t, ctrl.State.Loading.Read())
	assert.Len(t, ctrl.State.Visible.Read(), 10)

	view := m.View()
	assert.Contains(t, view, "10 products")
	assert.Contains(t, view, "Item 00")
	assert.Contains(t, view, "load more")
}

func TestModelLoadMoreHidesAffordance(t *testing.T) {
	m, ctrl := loaded(t, 25)

	m, _ = update(t, m, runes("n"))
	assert.Len(t, ctrl.State.Visible.Read(), 20)
	assert.Contains(t, m.View(), "20 products")

	m, _ = update(t, m, runes("n"))
	assert.Len(t, ctrl.State.Visible.Read(), 25)
	assert.False(t, ctrl.State.CanLoadMore)
	assert.NotContains(t, m.View(), "n: load more")
}

func TestModelMenuOpenClose(t *testing.T) {
	m, ctrl := loaded(t, 5)
	assert.NotContains(t, m.View(), "Categories")

	m, _ = update(t, m, runes("f"))
	assert.True(t, ctrl.State.MenuOpen)
	assert.Contains(t, m.View(), "Categories")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, ctrl.State.MenuOpen)
	assert.NotContains(t, m.View(), "Categories")
}

func TestModelToggleCategoryFilters(t *testing.T) {
	m, ctrl := loaded(t, 5)
	m, _ = update(t, m, runes("f"))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := update(t, m, runes("x"))
	require.NotNil(t, cmd)
	assert.True(t, ctrl.State.Loading.Read())
	assert.Contains(t, m.View(), "Loading products")

	msg, ok := cmd().(app.FetchedMsg)
	require.True(t, ok)
	assert.Equal(t, app.TriggerFilter, msg.Trigger)

	m, _ = update(t, m, msg)
	assert.False(t, ctrl.State.Loading.Read())
	require.Len(t, ctrl.State.Visible.Read(), 1)
	assert.Equal(t, "b", ctrl.State.Visible.Read()[0].Category)
	assert.Contains(t, m.View(), "1 products")
}

func TestModelToggleIgnoredWhenMenuClosed(t *testing.T) {
	m, ctrl := loaded(t, 5)
	_, cmd := update(t, m, runes("x"))
	assert.Nil(t, cmd)
	assert.True(t, ctrl.State.Filters.Empty())
}

func TestModelSortCycles(t *testing.T) {
	m, ctrl := loaded(t, 5)

	m, cmd := update(t, m, runes("s"))
	require.NotNil(t, cmd)
	assert.Equal(t, v1.SortByName, ctrl.State.Sort)
	assert.False(t, ctrl.State.Loading.Read())

	m, _ = update(t, m, cmd())
	assert.Contains(t, m.View(), "sort: name")
}

func TestModelQuit(t *testing.T) {
	m, ctrl := loaded(t, 5)
	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, 0, ctrl.State.Visible.Subscribers())
}
