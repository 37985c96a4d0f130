package http

import (
	"errors"
	"net/http"

	"beerorders/internal/core/application/usecases/commands"
	"beerorders/internal/core/application/usecases/queries"
	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/core/domain/model/order"
	"beerorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Error is the JSON body returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderLine is one requested line in an order submission.
type NewOrderLine struct {
	UPC      string `json:"upc"`
	Quantity int    `json:"orderQuantity"`
}

// NewOrder is the request body for POST /api/v1/orders.
type NewOrder struct {
	CustomerID  string         `json:"customerId"`
	CustomerRef string         `json:"customerRef"`
	Lines       []NewOrderLine `json:"beerOrderLines"`
}

// OrderLine is one line of an order in query responses.
type OrderLine struct {
	ID                string  `json:"id"`
	UPC               string  `json:"upc"`
	BeerName          string  `json:"beerName,omitempty"`
	BeerStyle         string  `json:"beerStyle,omitempty"`
	Price             float64 `json:"price,omitempty"`
	OrderQuantity     int     `json:"orderQuantity"`
	QuantityAllocated int     `json:"quantityAllocated"`
}

// Order is the response body for GET /api/v1/orders/:id.
type Order struct {
	ID          string      `json:"id"`
	CustomerID  string      `json:"customerId"`
	CustomerRef string      `json:"customerRef,omitempty"`
	Status      string      `json:"orderStatus"`
	Version     int         `json:"version"`
	Lines       []OrderLine `json:"beerOrderLines"`
}

// ActiveOrder is one element of the GET /api/v1/orders listing.
type ActiveOrder struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customerId"`
	CustomerRef string `json:"customerRef,omitempty"`
	Status      string `json:"orderStatus"`
}

// Server handles the HTTP surface of the order service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitOrderHandler commands.SubmitOrderCommandHandler
	pickUpOrderHandler commands.PickUpOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	pickUpOrderHandler commands.PickUpOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		submitOrderHandler:     submitOrderHandler,
		pickUpOrderHandler:     pickUpOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		getOrderHandler:        getOrderHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
	}
}

// RegisterRoutes attaches all order endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.SubmitOrder)
	e.GET("/api/v1/orders", s.GetActiveOrders)
	e.GET("/api/v1/orders/:id", s.GetOrder)
	e.PUT("/api/v1/orders/:id/pickup", s.PickUpOrder)
	e.DELETE("/api/v1/orders/:id", s.CancelOrder)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
}

// SubmitOrder handles POST /api/v1/orders - places a new beer order.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromString(newOrder.CustomerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer id",
		})
	}

	orderID := kernel.NewUUID()
	lines := make([]commands.LineSpec, len(newOrder.Lines))
	for i, line := range newOrder.Lines {
		lines[i] = commands.LineSpec{
			LineID:   kernel.NewUUID(),
			UPC:      line.UPC,
			Quantity: line.Quantity,
		}
	}

	cmd, err := commands.NewSubmitOrderCommand(orderID, customerID, newOrder.CustomerRef, lines)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to submit order",
		})
	}

	// Echo the order as initially persisted. Validation runs asynchronously,
	// so the body reflects the pre-validation-result state; GET picks up the
	// saga's progress from here.
	response := Order{
		ID:          orderID.String(),
		CustomerID:  customerID.String(),
		CustomerRef: newOrder.CustomerRef,
		Status:      order.New.String(),
		Lines:       make([]OrderLine, len(lines)),
	}
	for i, line := range lines {
		response.Lines[i] = OrderLine{
			ID:            line.LineID.String(),
			UPC:           line.UPC,
			OrderQuantity: line.Quantity,
		}
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with its lines.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	response := Order{
		ID:          result.ID.String(),
		CustomerID:  result.CustomerID.String(),
		CustomerRef: result.CustomerRef,
		Status:      result.Status,
		Version:     result.Version,
		Lines:       make([]OrderLine, len(result.Lines)),
	}
	for i, line := range result.Lines {
		response.Lines[i] = OrderLine{
			ID:                line.ID.String(),
			UPC:               line.UPC,
			BeerName:          line.BeerName,
			BeerStyle:         line.BeerStyle,
			Price:             line.Price,
			OrderQuantity:     line.OrderQuantity,
			QuantityAllocated: line.AllocatedQuantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveOrders handles GET /api/v1/orders - lists all in-flight orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrder{
			ID:          o.ID.String(),
			CustomerID:  o.CustomerID.String(),
			CustomerRef: o.CustomerRef,
			Status:      o.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PickUpOrder handles PUT /api/v1/orders/:id/pickup - marks an allocated order as picked up.
func (s *Server) PickUpOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewPickUpOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	if handleErr := s.pickUpOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to pick up order",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles DELETE /api/v1/orders/:id - cancels an in-flight order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to cancel order",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}
