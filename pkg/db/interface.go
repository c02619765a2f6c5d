package db

import (
	"context"

	"github.com/byxorna/storefront/pkg/types/v1"
)

// ProductBackend is the interface any catalog source satisfies. List always
// returns the complete catalog; there is no paging at this layer.
type ProductBackend interface {
	List(ctx context.Context) ([]v1.Product, error)
	Endpoint() string
}
