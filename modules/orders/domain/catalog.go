package domain

import (
	"context"

	"github.com/Ron9508/bookstore-backend/modules/shared/types"
)

// PriceCatalog provides current book prices from the catalog module.
// IDs absent from the returned map do not exist in the catalog.
type PriceCatalog interface {
	PricesByBookIDs(ctx context.Context, bookIDs []string) (map[string]types.Money, error)
}
