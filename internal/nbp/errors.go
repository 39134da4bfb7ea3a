package nbp

import (
	"errors"
	"net/http"
)

// Kind classifies a FetchError.
type Kind int

const (
	// KindTransport covers network failures, unexpected status codes and
	// undecodable bodies.
	KindTransport Kind = iota
	// KindNotFoundOrInvalid is an HTTP 400 or 404 answer: the API has no data
	// for the query or rejected its parameters.
	KindNotFoundOrInvalid
)

func (k Kind) String() string {
	if k == KindNotFoundOrInvalid {
		return "not_found_or_invalid"
	}
	return "transport"
}

// FetchError is returned by Client.Fetch for every failed request.
type FetchError struct {
	Kind       Kind
	StatusCode int
	// Message is the API's reason phrase for NotFoundOrInvalid, e.g.
	// "Not Found - Brak danych", or a short description for transport errors.
	Message string
	Path    string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsNotFoundOrInvalid reports whether err carries an HTTP 400/404 answer.
func IsNotFoundOrInvalid(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == KindNotFoundOrInvalid
}

// IsNoData reports whether err means the API has no data for the requested
// day or range (HTTP 404).
func IsNoData(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == KindNotFoundOrInvalid && fe.StatusCode == http.StatusNotFound
}
