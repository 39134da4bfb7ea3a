package dto

import (
	"github.com/guttosm/nbpstat/internal/domain/models"
	"github.com/guttosm/nbpstat/internal/orders"
)

// OrderResponse represents the JSON structure returned by the
// GET /api/v1/orders/{kind} endpoint.
type OrderResponse struct {
	RunID      string   `json:"run_id" example:"3f1c2a6e-8d0b-4b8e-9a57-0c4b1f7e2d11"`
	Order      string   `json:"order" example:"gold-average"`
	Args       string   `json:"args" example:"2017-01-02,2017-03-31"`
	Lines      []string `json:"lines"`             // report, one entry per printed line
	Result     any      `json:"result,omitempty"`  // structured payload, shape depends on the order
	Pages      int      `json:"pages" example:"1"` // NBP API requests issued
	DurationMs int64    `json:"duration_ms" example:"182"`
}

// NewOrderResponse builds the response for a successful outcome.
func NewOrderResponse(oc orders.Outcome) OrderResponse {
	lines := oc.Result.Lines
	if lines == nil {
		lines = []string{}
	}
	return OrderResponse{
		RunID:      oc.Run.ID.String(),
		Order:      oc.Run.Kind,
		Args:       oc.Run.Args,
		Lines:      lines,
		Result:     oc.Result.Data,
		Pages:      oc.Run.Pages,
		DurationMs: oc.Run.DurationMs,
	}
}

// RunsResponse is returned by GET /api/v1/runs.
type RunsResponse struct {
	Count int               `json:"count" example:"1"`
	Runs  []models.OrderRun `json:"runs"`
}

// OrderKindsResponse lists the orders the API accepts.
type OrderKindsResponse struct {
	Orders []string `json:"orders" example:"date-price,gold-average"`
}
