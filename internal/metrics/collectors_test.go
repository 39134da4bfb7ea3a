package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveOrder_CountsRunsAndPages(t *testing.T) {
	before := testutil.ToFloat64(OrdersTotal.WithLabelValues("week-graph", OutcomeOK))
	pagesBefore := testutil.ToFloat64(OrderPages.WithLabelValues("week-graph"))

	ObserveOrder("week-graph", OutcomeOK, 3)
	ObserveOrder("week-graph", OutcomeOK, 0)

	if got := testutil.ToFloat64(OrdersTotal.WithLabelValues("week-graph", OutcomeOK)) - before; got != 2 {
		t.Fatalf("orders delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(OrderPages.WithLabelValues("week-graph")) - pagesBefore; got != 3 {
		t.Fatalf("pages delta = %v, want 3", got)
	}
}

func TestObserveClientRequest(t *testing.T) {
	before := testutil.ToFloat64(ClientRequests.WithLabelValues(OutcomeNotFound))
	ObserveClientRequest(OutcomeNotFound, 20*time.Millisecond)
	if got := testutil.ToFloat64(ClientRequests.WithLabelValues(OutcomeNotFound)) - before; got != 1 {
		t.Fatalf("requests delta = %v, want 1", got)
	}
}

func TestHandler_ExposesNamespace(t *testing.T) {
	ObserveOrder("gold-average", OutcomeError, 1)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "nbpstat_orders_total") {
		t.Fatalf("missing nbpstat_orders_total in exposition")
	}
}
