package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderRun is one executed order as recorded in the journal.
//
// Fields:
//   - ID: run identifier, also attached to every log line of the run.
//   - Kind: order name (e.g., "gold-average").
//   - Args: raw argument string as given by the caller.
//   - Succeeded: false when the run ended with an error.
//   - Output: report lines joined with "\n".
//   - Error: failure line, empty on success.
//   - Pages: number of NBP API requests issued.
//   - StartedAt / DurationMs: wall-clock timing.
//
// This model is returned by the API when querying /api/v1/runs.
//
// swagger:model OrderRun
type OrderRun struct {
	ID         uuid.UUID `json:"id" example:"3f1c2a6e-8d0b-4b8e-9a57-0c4b1f7e2d11"`
	Kind       string    `json:"kind" example:"gold-average"`
	Args       string    `json:"args" example:"2017-01-02,2017-03-31"`
	Succeeded  bool      `json:"succeeded" example:"true"`
	Output     string    `json:"output" example:"The average price of gold from 2017-01-02 to 2017-03-31 was 151.2"`
	Error      string    `json:"error,omitempty"`
	Pages      int       `json:"pages" example:"1"`
	StartedAt  time.Time `json:"started_at"`
	DurationMs int64     `json:"duration_ms" example:"182"`
}
