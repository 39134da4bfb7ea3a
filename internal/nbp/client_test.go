package nbp

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"

	"github.com/guttosm/nbpstat/internal/dates"
)

func newTestServer(t *testing.T, h http.HandlerFunc) (*Client, *[]string) {
	t.Helper()
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.URL.RequestURI())
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL + "/api/"}), &seen
}

func TestFetch_GoldArray(t *testing.T) {
	c, seen := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"data":"2017-01-02","cena":147.5},{"data":"2017-01-03","cena":148.25}]`)
	})

	r := dates.Range{Start: civil.Date{Year: 2017, Month: 1, Day: 2}, End: civil.Date{Year: 2017, Month: 1, Day: 3}}
	got, err := Gold(context.Background(), c, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[1].Price != 148.25 || got[1].Date != r.End {
		t.Fatalf("unexpected gold prices: %+v", got)
	}
	if want := "/api/cenyzlota/2017-01-02/2017-01-03/?format=json"; (*seen)[0] != want {
		t.Fatalf("request uri = %q, want %q", (*seen)[0], want)
	}
}

func TestFetch_RateSeriesObject(t *testing.T) {
	c, seen := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"table":"A","currency":"dolar amerykański","code":"USD",
			"rates":[{"no":"214/A/NBP/2017","effectiveDate":"2017-11-06","mid":3.6504}]}`)
	})

	got, err := RateOn(context.Background(), c, TableA, "USD", civil.Date{Year: 2017, Month: 11, Day: 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Code != "USD" || len(got.Rates) != 1 || got.Rates[0].Mid != 3.6504 {
		t.Fatalf("unexpected series: %+v", got)
	}
	if !strings.Contains((*seen)[0], "/exchangerates/rates/a/usd/2017-11-06/") {
		t.Fatalf("unexpected path %q", (*seen)[0])
	}
}

func TestFetch_TablesArray(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"table":"C","no":"1/C/NBP/2017","effectiveDate":"2017-01-02",
			"rates":[{"currency":"dolar","code":"USD","bid":4.1,"ask":4.2},{"currency":"euro","code":"EUR","bid":4.3,"ask":4.4}]}]`)
	})

	got, err := TableOn(context.Background(), c, TableC, civil.Date{Year: 2017, Month: 1, Day: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Rates) != 2 || got.Rates[1].Code != "EUR" || got.Rates[1].Ask != 4.4 {
		t.Fatalf("unexpected table: %+v", got)
	}
}

func TestFetch_NotFoundIsNoData(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "404 NotFound - Not Found - Brak danych")
	})

	var out []GoldPrice
	err := c.Fetch(context.Background(), "cenyzlota/2017-01-01", &out)
	if !IsNoData(err) || !IsNotFoundOrInvalid(err) {
		t.Fatalf("expected no-data error, got %v", err)
	}
	var fe *FetchError
	if !errors.As(err, &fe) || fe.StatusCode != 404 || fe.Path != "cenyzlota/2017-01-01" {
		t.Fatalf("unexpected fetch error: %+v", fe)
	}
	if err.Error() != "Not Found" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestFetch_BadRequestIsInvalidButNotNoData(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	var out RateSeries
	err := c.Fetch(context.Background(), "exchangerates/rates/a/usd/2017-01-01/2019-01-01", &out)
	if !IsNotFoundOrInvalid(err) {
		t.Fatalf("expected not-found-or-invalid, got %v", err)
	}
	if IsNoData(err) {
		t.Fatalf("400 must not be treated as no data")
	}
}

func TestFetch_ServerErrorIsTransport(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	var out []GoldPrice
	err := c.Fetch(context.Background(), "cenyzlota", &out)
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Kind != KindTransport || fe.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected transport error, got %v", err)
	}
	if IsNotFoundOrInvalid(err) {
		t.Fatalf("502 must not be not-found")
	}
}

func TestFetch_MalformedJSONIsTransport(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"table":`)
	})

	var out RateSeries
	err := c.Fetch(context.Background(), "exchangerates/rates/a/usd", &out)
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Kind != KindTransport || fe.Err == nil {
		t.Fatalf("expected decode error, got %v", err)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestFetch_UsesServerReasonPhrase(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Status:     "404 Not Found - Brak danych",
			Body:       io.NopCloser(strings.NewReader("")),
			Header:     make(http.Header),
			Request:    r,
		}, nil
	})
	c := NewClient(Config{}, WithHTTPClient(&http.Client{Transport: rt}))

	var out []GoldPrice
	err := c.Fetch(context.Background(), "cenyzlota/2017-11-11", &out)
	if err == nil || err.Error() != "Not Found - Brak danych" {
		t.Fatalf("message = %v", err)
	}
}

func TestFetch_TransportFailure(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})
	c := NewClient(Config{}, WithHTTPClient(&http.Client{Transport: rt}))

	var out []GoldPrice
	err := c.Fetch(context.Background(), "cenyzlota", &out)
	if err == nil || IsNotFoundOrInvalid(err) || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFetch_RateLimitHonorsContext(t *testing.T) {
	c, seen := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})
	limited := NewClient(Config{BaseURL: c.baseURL, RateLimit: 0.001})

	var out []GoldPrice
	if err := limited.Fetch(context.Background(), "cenyzlota", &out); err != nil {
		t.Fatalf("first request should pass the limiter: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := limited.Fetch(ctx, "cenyzlota", &out); err == nil {
		t.Fatalf("expected limiter wait to fail")
	}
	if len(*seen) != 1 {
		t.Fatalf("server saw %d requests, want 1", len(*seen))
	}
}

func TestURL(t *testing.T) {
	c := NewClient(Config{})
	if got, want := c.URL("cenyzlota/2017-01-01"), "http://api.nbp.pl/api/cenyzlota/2017-01-01/?format=json"; got != want {
		t.Fatalf("URL = %q, want %q", got, want)
	}
	c = NewClient(Config{BaseURL: "http://localhost:1/api", Suffix: "?x=1"})
	if got, want := c.URL("/tables/"), "http://localhost:1/api/tables?x=1"; got != want {
		t.Fatalf("URL = %q, want %q", got, want)
	}
}

func TestPaths(t *testing.T) {
	r := dates.Range{Start: civil.Date{Year: 2016, Month: 1, Day: 1}, End: civil.Date{Year: 2016, Month: 3, Day: 31}}
	cases := map[string]string{
		GoldRangePath(r):                "cenyzlota/2016-01-01/2016-03-31",
		RateRangePath(TableC, "EUR", r): "exchangerates/rates/c/eur/2016-01-01/2016-03-31",
		TablePath(TableA, r.Start):      "exchangerates/tables/a/2016-01-01",
		TableRangePath(TableA, r):       "exchangerates/tables/a/2016-01-01/2016-03-31",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("path = %q, want %q", got, want)
		}
	}
}
