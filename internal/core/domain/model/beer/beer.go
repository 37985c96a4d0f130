// Package beer provides the read model for beer metadata served by the
// remote catalog collaborator. The fulfillment core never writes beers;
// the query layer uses this model to enrich order-line responses.
package beer

import "github.com/google/uuid"

// Beer describes one catalog entry looked up by UPC.
type Beer struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"beerName"`
	Style string    `json:"beerStyle"`
	UPC   string    `json:"upc"`
	Price float64   `json:"price"`
}
