package queries

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/core/domain/model/order"
	"beerorders/internal/core/ports"
	"beerorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its lines from the database and
// enriches each line with beer metadata from the catalog. A catalog miss or
// outage degrades the response instead of failing it: the line ships with
// its UPC and quantities only.
type GetOrderQueryHandler struct {
	db      *gorm.DB
	catalog ports.BeerCatalog
	log     *slog.Logger
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection and a beer catalog for enrichment.
func NewGetOrderQueryHandler(db *gorm.DB, catalog ports.BeerCatalog) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		db:      db,
		catalog: catalog,
		log:     slog.Default().With("component", "get-order-query"),
	}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no order
// with the given ID exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			customer_ref,
			status,
			version
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var id, customerID uuid.UUID
	var status int
	if err := row.Scan(&id, &customerID, &resp.CustomerRef, &status, &resp.Version); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID

	customerUUID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.CustomerID = customerUUID
	resp.Status = order.Status(status).String()

	lines, err := h.loadLines(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Lines = lines

	return resp, nil
}

func (h GetOrderQueryHandler) loadLines(ctx context.Context, orderID kernel.UUID) ([]OrderLineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			upc,
			order_quantity,
			allocated_quantity
		FROM order_lines
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineResponse, 0)
	for rows.Next() {
		var line OrderLineResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &line.UPC, &line.OrderQuantity, &line.AllocatedQuantity); err != nil {
			return nil, err
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		line.ID = lineID

		h.enrich(ctx, &line)
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func (h GetOrderQueryHandler) enrich(ctx context.Context, line *OrderLineResponse) {
	entry, err := h.catalog.GetByUPC(ctx, line.UPC)
	if err != nil {
		h.log.Warn("beer catalog lookup failed", "upc", line.UPC, "error", err)
		return
	}

	line.BeerName = entry.Name
	line.BeerStyle = entry.Style
	line.Price = entry.Price
}
