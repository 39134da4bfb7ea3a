package dto

import "time"

// ErrorResponse is the JSON body of every non-2xx answer.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message      string    `json:"error" example:"The average price of gold from 2017-01-02 to 2017-01-31 could not be retrieved"`
	ErrorDetails string    `json:"details,omitempty" example:"Not Found - Brak danych"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse stamps a new ErrorResponse with the current UTC time.
// err, when non-nil, becomes ErrorDetails.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
