package orders

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"github.com/goccy/go-json"

	"github.com/guttosm/nbpstat/internal/nbp"
)

// fakeFetcher serves canned bodies by path. Unknown paths answer like the
// API does for days without data.
type fakeFetcher struct {
	bodies map[string]string
	errs   map[string]error
	calls  []string
}

func newFake() *fakeFetcher {
	return &fakeFetcher{bodies: map[string]string{}, errs: map[string]error{}}
}

func (f *fakeFetcher) Fetch(_ context.Context, path string, out any) error {
	f.calls = append(f.calls, path)
	if err, ok := f.errs[path]; ok {
		return err
	}
	body, ok := f.bodies[path]
	if !ok {
		return notFound(path)
	}
	return json.Unmarshal([]byte(body), out)
}

func notFound(path string) error {
	return &nbp.FetchError{Kind: nbp.KindNotFoundOrInvalid, StatusCode: 404, Message: "Not Found - Brak danych", Path: path}
}

func badRequest(path string) error {
	return &nbp.FetchError{Kind: nbp.KindNotFoundOrInvalid, StatusCode: 400, Message: "Bad Request - Przekroczony limit", Path: path}
}

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func envFor(f *fakeFetcher, today civil.Date) Env {
	return Env{
		Fetcher: f,
		Today:   func() civil.Date { return today },
	}
}
