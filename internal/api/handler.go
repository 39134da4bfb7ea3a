package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/nbpstat/internal/domain/dto"
	"github.com/guttosm/nbpstat/internal/middleware"
	"github.com/guttosm/nbpstat/internal/orders"
	"github.com/guttosm/nbpstat/internal/service"
)

// RunIDHeader carries the journal id of the run that produced a response.
const RunIDHeader = "X-Run-ID"

// Handler exposes orders and the run journal over HTTP.
//
// Responsibilities:
//   - Validate path and query parameters
//   - Delegate to the OrderService
//   - Map run failures to HTTP status codes
type Handler struct {
	svc service.OrderService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.OrderService) *Handler {
	return &Handler{svc: svc}
}

// ListOrders godoc
// @Summary      List orders
// @Description  Names accepted by /api/v1/orders/{kind}, in batch execution order
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.OrderKindsResponse
// @Router       /api/v1/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	kinds := orders.Kinds()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	c.JSON(http.StatusOK, dto.OrderKindsResponse{Orders: names})
}

// RunOrder handles GET /api/v1/orders/{kind}.
//
// The args query parameter is the same argument string the CLI flag takes,
// e.g. "usd,2017-11-10" for date-price or "usd;2017,10,5;2017,11,2" for
// week-graph.
//
// RunOrder godoc
// @Summary      Run an order
// @Description  Runs one order against the NBP API and returns its report
// @Tags         orders
// @Produce      json
// @Param        kind  path      string  true   "Order name"  Enums(date-price, gold-average, highest-amplitude, lowest-price, sort-by-difference, lowest-highest, week-graph)
// @Param        args  query     string  false  "Order arguments"  example(2017-01-02,2017-01-31)
// @Success      200   {object}  dto.OrderResponse  "Success"
// @Failure      400   {object}  dto.ErrorResponse  "Invalid arguments"
// @Failure      404   {object}  dto.ErrorResponse  "Unknown order or no data"
// @Failure      502   {object}  dto.ErrorResponse  "NBP API failure"
// @Failure      504   {object}  dto.ErrorResponse  "Timed out"
// @Router       /api/v1/orders/{kind} [get]
func (h *Handler) RunOrder(c *gin.Context) {
	oc, err := h.svc.Execute(c.Request.Context(), c.Param("kind"), c.Query("args"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusNotFound, "unknown order", err)
		return
	}
	c.Header(RunIDHeader, oc.Run.ID.String())

	if oc.Err != nil {
		message, cause := describe(oc.Err)
		middleware.AbortWithError(c, statusFor(oc.Err), message, cause)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(oc))
}

// ListRuns godoc
// @Summary      List recent runs
// @Description  Newest journal entries first
// @Tags         runs
// @Produce      json
// @Param        limit  query     int  false  "Max entries (1-100)"  default(20)
// @Success      200    {object}  dto.RunsResponse
// @Failure      400    {object}  dto.ErrorResponse  "Bad limit"
// @Failure      503    {object}  dto.ErrorResponse  "Journal disabled"
// @Failure      500    {object}  dto.ErrorResponse  "Storage failure"
// @Router       /api/v1/runs [get]
func (h *Handler) ListRuns(c *gin.Context) {
	limit := 0
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			middleware.AbortWithError(c, http.StatusBadRequest, "limit must be a positive integer", err)
			return
		}
		limit = n
	}

	runs, err := h.svc.RecentRuns(c.Request.Context(), limit)
	switch {
	case errors.Is(err, service.ErrJournalDisabled):
		middleware.AbortWithError(c, http.StatusServiceUnavailable, "order journal is disabled", nil)
		return
	case err != nil:
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to list runs", err)
		return
	}
	c.JSON(http.StatusOK, dto.RunsResponse{Count: len(runs), Runs: runs})
}

// statusFor maps a failed run to its HTTP status.
func statusFor(err error) int {
	switch {
	case orders.IsValidation(err):
		return http.StatusBadRequest
	case orders.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

// describe splits a run error into the operation that failed and its cause.
// Joined failures are reported whole.
func describe(err error) (string, error) {
	if _, joined := err.(interface{ Unwrap() []error }); joined {
		return err.Error(), nil
	}
	var re *orders.RunError
	if errors.As(err, &re) {
		return re.Op, re.Err
	}
	return err.Error(), nil
}
