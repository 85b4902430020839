package app

import (
	"context"

	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
)

type CatalogReader interface {
	FetchAll(ctx context.Context) ([]catalogdomain.Product, error)
	FetchFiltered(ctx context.Context, query string) ([]catalogdomain.Product, error)
}

type CartAPI interface {
	Fetch(ctx context.Context, token string) ([]cartdomain.Entry, error)
	SubmitQuantity(ctx context.Context, token, productID string, qty int) ([]cartdomain.Entry, error)
}
