// Package http exposes the fulfillment engine over a JSON API.
// Handlers translate requests into commands and queries and map domain
// errors onto HTTP status codes; no business rules live here.
package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	pickHandler             commands.PickCommandHandler
	markShortHandler        commands.MarkShortCommandHandler
	resolveExceptionHandler commands.ResolveExceptionCommandHandler
	toggleOrderedHandler    commands.ToggleOrderedCommandHandler
	toggleNACancelHandler   commands.ToggleNACancelCommandHandler
	splitOrderHandler       commands.SplitOrderCommandHandler
	unsplitOrderHandler     commands.UnsplitOrderCommandHandler
	packOrderHandler        commands.PackOrderCommandHandler
	revertOrderHandler      commands.RevertOrderCommandHandler
	setOrderStateHandler    commands.SetOrderStateCommandHandler

	// Query handlers
	pickListHandler        queries.GetPickListQueryHandler
	pickListStatsHandler   queries.GetPickListStatsQueryHandler
	ordersForSKUHandler    queries.GetOrdersForSKUQueryHandler
	stockExceptionsHandler queries.GetStockExceptionsQueryHandler
	shortageSummaryHandler queries.GetShortageSummaryQueryHandler
	orderStatusHandler     queries.GetOrderStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	pickHandler commands.PickCommandHandler,
	markShortHandler commands.MarkShortCommandHandler,
	resolveExceptionHandler commands.ResolveExceptionCommandHandler,
	toggleOrderedHandler commands.ToggleOrderedCommandHandler,
	toggleNACancelHandler commands.ToggleNACancelCommandHandler,
	splitOrderHandler commands.SplitOrderCommandHandler,
	unsplitOrderHandler commands.UnsplitOrderCommandHandler,
	packOrderHandler commands.PackOrderCommandHandler,
	revertOrderHandler commands.RevertOrderCommandHandler,
	setOrderStateHandler commands.SetOrderStateCommandHandler,
	pickListHandler queries.GetPickListQueryHandler,
	pickListStatsHandler queries.GetPickListStatsQueryHandler,
	ordersForSKUHandler queries.GetOrdersForSKUQueryHandler,
	stockExceptionsHandler queries.GetStockExceptionsQueryHandler,
	shortageSummaryHandler queries.GetShortageSummaryQueryHandler,
	orderStatusHandler queries.GetOrderStatusQueryHandler,
) *Server {
	return &Server{
		pickHandler:             pickHandler,
		markShortHandler:        markShortHandler,
		resolveExceptionHandler: resolveExceptionHandler,
		toggleOrderedHandler:    toggleOrderedHandler,
		toggleNACancelHandler:   toggleNACancelHandler,
		splitOrderHandler:       splitOrderHandler,
		unsplitOrderHandler:     unsplitOrderHandler,
		packOrderHandler:        packOrderHandler,
		revertOrderHandler:      revertOrderHandler,
		setOrderStateHandler:    setOrderStateHandler,
		pickListHandler:         pickListHandler,
		pickListStatsHandler:    pickListStatsHandler,
		ordersForSKUHandler:     ordersForSKUHandler,
		stockExceptionsHandler:  stockExceptionsHandler,
		shortageSummaryHandler:  shortageSummaryHandler,
		orderStatusHandler:      orderStatusHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/picks", s.Pick)

	api.GET("/pick-list", s.GetPickList)
	api.GET("/pick-list/stats", s.GetPickListStats)
	api.GET("/pick-list/:sku/orders", s.GetOrdersForSKU)

	api.POST("/stock-exceptions", s.MarkShort)
	api.GET("/stock-exceptions", s.GetStockExceptions)
	api.GET("/stock-exceptions/summary", s.GetShortageSummary)
	api.POST("/stock-exceptions/:id/resolve", s.ResolveException)
	api.POST("/stock-exceptions/:id/toggle-ordered", s.ToggleOrdered)
	api.POST("/stock-exceptions/:id/toggle-na-cancel", s.ToggleNACancel)

	api.GET("/orders/:id", s.GetOrderStatus)
	api.POST("/orders/:id/split", s.SplitOrder)
	api.POST("/orders/:id/unsplit", s.UnsplitOrder)
	api.POST("/orders/:id/pack", s.PackOrder)
	api.POST("/orders/:id/revert", s.RevertOrder)
	api.POST("/orders/:id/state", s.SetOrderState)
}

// Error is the JSON error envelope.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain errors to HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, commands.ErrNoApplicableAllocations):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func parseUUIDParam(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// PickRequest is the body of POST /api/v1/picks.
type PickRequest struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	Actor    string `json:"actor"`
	Notes    string `json:"notes"`
}

// PickResponse reports how a pick was distributed.
type PickResponse struct {
	AffectedOrderIDs []string `json:"affectedOrderIds"`
	ReadyOrders      []string `json:"readyOrders"`
}

// Pick handles POST /api/v1/picks - allocates picked units oldest order first.
func (s *Server) Pick(ctx echo.Context) error {
	var req PickRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPickCommand(req.SKU, req.Quantity, req.Actor, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.pickHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := PickResponse{
		AffectedOrderIDs: make([]string, len(result.AffectedOrderIDs)),
		ReadyOrders:      result.ReadyOrders,
	}
	for i, id := range result.AffectedOrderIDs {
		response.AffectedOrderIDs[i] = id.String()
	}
	if response.ReadyOrders == nil {
		response.ReadyOrders = []string{}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ShortAllocationRequest assigns part of a reported shortage to one order.
type ShortAllocationRequest struct {
	OrderID  string `json:"orderId"`
	QtyShort int    `json:"qtyShort"`
}

// MarkShortRequest is the body of POST /api/v1/stock-exceptions.
type MarkShortRequest struct {
	SKU         string                   `json:"sku"`
	Allocations []ShortAllocationRequest `json:"allocations"`
	Actor       string                   `json:"actor"`
	Notes       string                   `json:"notes"`
}

// SkippedAllocationResponse reports one allocation that was not applied.
type SkippedAllocationResponse struct {
	OrderID  string `json:"orderId"`
	QtyShort int    `json:"qtyShort"`
	Reason   string `json:"reason"`
}

// MarkShortResponse reports the created exception and any skips.
type MarkShortResponse struct {
	ExceptionID  string                      `json:"exceptionId"`
	QtyShort     int                         `json:"qtyShort"`
	OrderNumbers []string                    `json:"orderNumbers"`
	Skipped      []SkippedAllocationResponse `json:"skipped"`
}

// MarkShort handles POST /api/v1/stock-exceptions - records a shortage.
func (s *Server) MarkShort(ctx echo.Context) error {
	var req MarkShortRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	allocations := make([]commands.ShortAllocation, 0, len(req.Allocations))
	for _, a := range req.Allocations {
		orderID, err := kernel.UUIDFromString(a.OrderID)
		if err != nil {
			return badRequest(ctx, "Invalid order id: "+a.OrderID)
		}
		allocations = append(allocations, commands.ShortAllocation{
			OrderID:  orderID,
			QtyShort: a.QtyShort,
		})
	}

	cmd, err := commands.NewMarkShortCommand(req.SKU, allocations, req.Actor, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.markShortHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := MarkShortResponse{
		ExceptionID:  result.ExceptionID.String(),
		QtyShort:     result.QtyShort,
		OrderNumbers: result.OrderNumbers,
		Skipped:      make([]SkippedAllocationResponse, 0, len(result.Skipped)),
	}
	for _, skip := range result.Skipped {
		response.Skipped = append(response.Skipped, SkippedAllocationResponse{
			OrderID:  skip.OrderID.String(),
			QtyShort: skip.QtyShort,
			Reason:   skip.Reason,
		})
	}

	return ctx.JSON(http.StatusCreated, response)
}

// ResolveExceptionRequest is the body of POST /api/v1/stock-exceptions/:id/resolve.
type ResolveExceptionRequest struct {
	Actor string `json:"actor"`
}

// SkippedRestorationResponse reports one order whose shortage stayed in place.
type SkippedRestorationResponse struct {
	OrderNumber  string `json:"orderNumber"`
	Batch        int    `json:"batch"`
	CurrentBatch int    `json:"currentBatch"`
}

// ResolveExceptionResponse reports the outcome of a resolution.
type ResolveExceptionResponse struct {
	RestoredItems           int                          `json:"restoredItems"`
	RestoredUnits           int                          `json:"restoredUnits"`
	RevertedOrders          int                          `json:"revertedOrders"`
	Skipped                 []SkippedRestorationResponse `json:"skipped"`
	AllItemsInPackedBatches bool                         `json:"allItemsInPackedBatches"`
}

// ResolveException handles POST /api/v1/stock-exceptions/:id/resolve.
func (s *Server) ResolveException(ctx echo.Context) error {
	exceptionID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid exception id")
	}

	var req ResolveExceptionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewResolveExceptionCommand(exceptionID, req.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.resolveExceptionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := ResolveExceptionResponse{
		RestoredItems:           result.RestoredItems,
		RestoredUnits:           result.RestoredUnits,
		RevertedOrders:          result.RevertedOrders,
		Skipped:                 make([]SkippedRestorationResponse, 0, len(result.Skipped)),
		AllItemsInPackedBatches: result.AllItemsInPackedBatches,
	}
	for _, skip := range result.Skipped {
		response.Skipped = append(response.Skipped, SkippedRestorationResponse{
			OrderNumber:  skip.OrderNumber,
			Batch:        skip.Batch,
			CurrentBatch: skip.CurrentBatch,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// ToggleResponse reports the new value of a flipped flag.
type ToggleResponse struct {
	Value           bool     `json:"value"`
	OrdersMadeReady []string `json:"ordersMadeReady,omitempty"`
}

// ToggleOrdered handles POST /api/v1/stock-exceptions/:id/toggle-ordered.
func (s *Server) ToggleOrdered(ctx echo.Context) error {
	exceptionID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid exception id")
	}

	cmd, err := commands.NewToggleOrderedCommand(exceptionID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.toggleOrderedHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ToggleResponse{Value: result.OrderedFromCompany})
}

// ToggleNACancel handles POST /api/v1/stock-exceptions/:id/toggle-na-cancel.
// Flipping the flag on re-evaluates readiness of the affected orders.
func (s *Server) ToggleNACancel(ctx echo.Context) error {
	exceptionID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid exception id")
	}

	cmd, err := commands.NewToggleNACancelCommand(exceptionID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.toggleNACancelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ToggleResponse{
		Value:           result.NACancel,
		OrdersMadeReady: result.OrdersMadeReady,
	})
}

// SplitOrderRequest maps item ids to shipment batch numbers.
type SplitOrderRequest struct {
	Assignments map[string]int `json:"assignments"`
}

// SplitOrderResponse reports the order's shipment layout after a split.
type SplitOrderResponse struct {
	TotalShipments  int `json:"totalShipments"`
	CurrentShipment int `json:"currentShipment"`
}

// SplitOrder handles POST /api/v1/orders/:id/split.
func (s *Server) SplitOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req SplitOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	assignments := make(map[kernel.UUID]int, len(req.Assignments))
	for itemID, batch := range req.Assignments {
		id, parseErr := kernel.UUIDFromString(itemID)
		if parseErr != nil {
			return badRequest(ctx, "Invalid item id: "+itemID)
		}
		assignments[id] = batch
	}

	cmd, err := commands.NewSplitOrderCommand(orderID, assignments)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.splitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SplitOrderResponse{
		TotalShipments:  result.TotalShipments,
		CurrentShipment: result.CurrentShipment,
	})
}

// UnsplitOrder handles POST /api/v1/orders/:id/unsplit.
func (s *Server) UnsplitOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewUnsplitOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.unsplitOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PackOrderRequest is the body of POST /api/v1/orders/:id/pack.
type PackOrderRequest struct {
	Actor string `json:"actor"`
}

// PackOrderResponse reports the order's position after packing a batch.
type PackOrderResponse struct {
	FullyPacked     bool `json:"fullyPacked"`
	CurrentShipment int  `json:"currentShipment"`
	TotalShipments  int  `json:"totalShipments"`
}

// PackOrder handles POST /api/v1/orders/:id/pack.
func (s *Server) PackOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req PackOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPackOrderCommand(orderID, req.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.packOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PackOrderResponse{
		FullyPacked:     result.FullyPacked,
		CurrentShipment: result.CurrentShipment,
		TotalShipments:  result.TotalShipments,
	})
}

// RevertOrder handles POST /api/v1/orders/:id/revert - the destructive
// correction flow back to Open.
func (s *Server) RevertOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewRevertOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.revertOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetOrderStateRequest is the body of POST /api/v1/orders/:id/state.
type SetOrderStateRequest struct {
	State string `json:"state"`
	Actor string `json:"actor"`
}

// SetOrderState handles POST /api/v1/orders/:id/state - the administrative
// state override.
func (s *Server) SetOrderState(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req SetOrderStateRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(req.State)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetOrderStateCommand(orderID, target, req.Actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.setOrderStateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PickListLine is one SKU's aggregated demand on the pick list.
type PickListLine struct {
	SKU         string    `json:"sku"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	QtyToPick   int       `json:"qtyToPick"`
	OrderCount  int       `json:"orderCount"`
	OldestOrder time.Time `json:"oldestOrder"`
}

// GetPickList handles GET /api/v1/pick-list.
func (s *Server) GetPickList(ctx echo.Context) error {
	result, err := s.pickListHandler.Handle(ctx.Request().Context(), queries.NewGetPickListQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PickListLine, len(result))
	for i, line := range result {
		response[i] = PickListLine{
			SKU:         line.SKU,
			Title:       line.Title,
			Category:    line.Category,
			QtyToPick:   line.QtyToPick,
			OrderCount:  line.OrderCount,
			OldestOrder: line.OldestOrder,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PickListStats is the floor-level counter set.
type PickListStats struct {
	UnitsToPick         int `json:"unitsToPick"`
	DistinctSKUs        int `json:"distinctSkus"`
	OrdersOpen          int `json:"ordersOpen"`
	OrdersPicking       int `json:"ordersPicking"`
	OrdersReadyToPack   int `json:"ordersReadyToPack"`
	UnresolvedShortages int `json:"unresolvedShortages"`
}

// GetPickListStats handles GET /api/v1/pick-list/stats.
func (s *Server) GetPickListStats(ctx echo.Context) error {
	result, err := s.pickListStatsHandler.Handle(ctx.Request().Context(), queries.NewGetPickListStatsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PickListStats{
		UnitsToPick:         result.UnitsToPick,
		DistinctSKUs:        result.DistinctSKUs,
		OrdersOpen:          result.OrdersOpen,
		OrdersPicking:       result.OrdersPicking,
		OrdersReadyToPack:   result.OrdersReadyToPack,
		UnresolvedShortages: result.UnresolvedShortages,
	})
}

// SKUOrderLine is one order's outstanding demand for a SKU.
type SKUOrderLine struct {
	OrderID      string    `json:"orderId"`
	ItemID       string    `json:"itemId"`
	OrderNumber  string    `json:"orderNumber"`
	CustomerName string    `json:"customerName"`
	Status       string    `json:"status"`
	QtyOrdered   int       `json:"qtyOrdered"`
	QtyPicked    int       `json:"qtyPicked"`
	QtyShort     int       `json:"qtyShort"`
	QtyRemaining int       `json:"qtyRemaining"`
	CreatedAt    time.Time `json:"createdAt"`
}

// GetOrdersForSKU handles GET /api/v1/pick-list/:sku/orders.
func (s *Server) GetOrdersForSKU(ctx echo.Context) error {
	query, err := queries.NewGetOrdersForSKUQuery(ctx.Param("sku"))
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.ordersForSKUHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]SKUOrderLine, len(result))
	for i, line := range result {
		response[i] = SKUOrderLine{
			OrderID:      line.OrderID.String(),
			ItemID:       line.ItemID.String(),
			OrderNumber:  line.OrderNumber,
			CustomerName: line.CustomerName,
			Status:       line.Status,
			QtyOrdered:   line.QtyOrdered,
			QtyPicked:    line.QtyPicked,
			QtyShort:     line.QtyShort,
			QtyRemaining: line.QtyRemaining,
			CreatedAt:    line.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// StockExceptionView is one exception row on the exceptions board.
type StockExceptionView struct {
	ID                 string    `json:"id"`
	SKU                string    `json:"sku"`
	ProductTitle       string    `json:"productTitle"`
	Category           string    `json:"category"`
	QtyShort           int       `json:"qtyShort"`
	OrderNumbers       []string  `json:"orderNumbers"`
	ReportedBy         string    `json:"reportedBy"`
	ReportedAt         time.Time `json:"reportedAt"`
	Resolved           bool      `json:"resolved"`
	OrderedFromCompany bool      `json:"orderedFromCompany"`
	NACancel           bool      `json:"naCancel"`
	Notes              string    `json:"notes"`
}

// GetStockExceptions handles GET /api/v1/stock-exceptions with optional
// resolved, reportedAfter and reportedBefore filters.
func (s *Server) GetStockExceptions(ctx echo.Context) error {
	var resolved *bool
	if raw := ctx.QueryParam("resolved"); raw != "" {
		switch raw {
		case "true":
			v := true
			resolved = &v
		case "false":
			v := false
			resolved = &v
		default:
			return badRequest(ctx, "resolved must be true or false")
		}
	}

	reportedAfter, err := parseTimeParam(ctx, "reportedAfter")
	if err != nil {
		return badRequest(ctx, "reportedAfter must be RFC 3339")
	}
	reportedBefore, err := parseTimeParam(ctx, "reportedBefore")
	if err != nil {
		return badRequest(ctx, "reportedBefore must be RFC 3339")
	}

	query := queries.NewGetStockExceptionsQuery(resolved, reportedAfter, reportedBefore)

	result, err := s.stockExceptionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]StockExceptionView, len(result))
	for i, row := range result {
		response[i] = StockExceptionView{
			ID:                 row.ID.String(),
			SKU:                row.SKU,
			ProductTitle:       row.ProductTitle,
			Category:           row.Category,
			QtyShort:           row.QtyShort,
			OrderNumbers:       row.OrderNumbers,
			ReportedBy:         row.ReportedBy,
			ReportedAt:         row.ReportedAt,
			Resolved:           row.Resolved,
			OrderedFromCompany: row.OrderedFromCompany,
			NACancel:           row.NACancel,
			Notes:              row.Notes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func parseTimeParam(ctx echo.Context, name string) (*time.Time, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ShortageSummaryLine is one SKU's rollup of unresolved shortages.
type ShortageSummaryLine struct {
	SKU            string   `json:"sku"`
	ProductTitle   string   `json:"productTitle"`
	Category       string   `json:"category"`
	TotalQtyShort  int      `json:"totalQtyShort"`
	OrderNumbers   []string `json:"orderNumbers"`
	ExceptionCount int      `json:"exceptionCount"`
}

// GetShortageSummary handles GET /api/v1/stock-exceptions/summary.
func (s *Server) GetShortageSummary(ctx echo.Context) error {
	result, err := s.shortageSummaryHandler.Handle(ctx.Request().Context(), queries.NewGetShortageSummaryQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ShortageSummaryLine, len(result))
	for i, line := range result {
		response[i] = ShortageSummaryLine{
			SKU:            line.SKU,
			ProductTitle:   line.ProductTitle,
			Category:       line.Category,
			TotalQtyShort:  line.TotalQtyShort,
			OrderNumbers:   line.OrderNumbers,
			ExceptionCount: line.ExceptionCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// OrderItemView is one item line in the order status view.
type OrderItemView struct {
	ItemID        string `json:"itemId"`
	SKU           string `json:"sku"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	QtyOrdered    int    `json:"qtyOrdered"`
	QtyPicked     int    `json:"qtyPicked"`
	QtyShort      int    `json:"qtyShort"`
	ShipmentBatch int    `json:"shipmentBatch"`
}

// OrderStatusView is the full lifecycle view of one order.
type OrderStatusView struct {
	OrderID         string          `json:"orderId"`
	ExternalID      string          `json:"externalId"`
	Number          string          `json:"number"`
	CustomerName    string          `json:"customerName"`
	Status          string          `json:"status"`
	ReadyToPack     bool            `json:"readyToPack"`
	TotalShipments  int             `json:"totalShipments"`
	CurrentShipment int             `json:"currentShipment"`
	PackedAt        *time.Time      `json:"packedAt"`
	PackedBy        string          `json:"packedBy"`
	CreatedAt       time.Time       `json:"createdAt"`
	Items           []OrderItemView `json:"items"`
}

// GetOrderStatus handles GET /api/v1/orders/:id.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.orderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := OrderStatusView{
		OrderID:         result.OrderID.String(),
		ExternalID:      result.ExternalID,
		Number:          result.Number,
		CustomerName:    result.CustomerName,
		Status:          result.Status,
		ReadyToPack:     result.ReadyToPack,
		TotalShipments:  result.TotalShipments,
		CurrentShipment: result.CurrentShipment,
		PackedAt:        result.PackedAt,
		PackedBy:        result.PackedBy,
		CreatedAt:       result.CreatedAt,
		Items:           make([]OrderItemView, len(result.Items)),
	}
	for i, item := range result.Items {
		response.Items[i] = OrderItemView{
			ItemID:        item.ItemID.String(),
			SKU:           item.SKU,
			Title:         item.Title,
			Category:      item.Category,
			QtyOrdered:    item.QtyOrdered,
			QtyPicked:     item.QtyPicked,
			QtyShort:      item.QtyShort,
			ShipmentBatch: item.ShipmentBatch,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
