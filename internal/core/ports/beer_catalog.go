package ports

import (
	"context"

	"beerorders/internal/core/domain/model/beer"
)

// BeerCatalog looks up beer metadata in the remote catalog service.
// Implementations may cache results; catalog data changes rarely.
type BeerCatalog interface {
	// GetByUPC returns the catalog entry for the given UPC.
	// A missing UPC surfaces as errs.ObjectNotFoundError.
	GetByUPC(ctx context.Context, upc string) (*beer.Beer, error)
}
