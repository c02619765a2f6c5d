package app

import (
	"context"
	"fmt"
	"net/url"

	"github.com/byxorna/storefront/pkg/catalog"
	"github.com/byxorna/storefront/pkg/config"
	"github.com/byxorna/storefront/pkg/db"
	"github.com/byxorna/storefront/pkg/db/fs"
	"github.com/byxorna/storefront/pkg/db/remote"
	"github.com/byxorna/storefront/pkg/types/v1"
	"golang.org/x/text/language"
)

// New wires the remote catalog, the fetcher and a fresh State from cfg.
func New(ctx context.Context, cfg *config.Config) (*Controller, error) {
	locale, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("unable to parse locale %q: %w", cfg.Locale, err)
	}

	backend, err := newBackend(cfg)
	if err != nil {
		return nil, fmt.Errorf("error initializing catalog backend: %w", err)
	}

	sortKey, err := v1.ParseSortKey(string(cfg.Sort))
	if err != nil {
		return nil, err
	}

	state := NewState(v1.NewFilterSet(cfg.Filters...), sortKey)
	return NewController(ctx, state, catalog.New(backend, locale), Options{
		PageSize:            cfg.PageSize,
		FenceStaleResponses: cfg.FenceStaleResponses,
	}), nil
}

// newBackend reads file:// endpoints from disk and everything else over HTTP.
func newBackend(cfg *config.Config) (db.ProductBackend, error) {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	if u.Scheme == fs.Scheme {
		return fs.NewFromURL(u)
	}
	return remote.New(remote.Config{
		Endpoint:  cfg.Endpoint,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
	})
}
