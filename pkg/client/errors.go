package client

import "fmt"

// Status codes for failures that have no real HTTP status of their own. For
// server failures the status is the HTTP status itself.
const (
	StatusNetwork    = 0
	StatusBadRequest = 400
	StatusTimeout    = 408
	StatusSchema     = 422
)

// APIError is the single categorized error surfaced by every remote call.
// Recovery, if any, is the caller's decision: the client never retries.
type APIError struct {
	Status  int
	Message string
	Details string
}

func (err *APIError) Error() string {
	if err.Details == "" {
		return fmt.Sprintf("api error %d: %v", err.Status, err.Message)
	}
	return fmt.Sprintf("api error %d: %v (%v)", err.Status, err.Message, err.Details)
}

// IsNetwork reports a connectivity failure: the call never completed.
func (err *APIError) IsNetwork() bool { return err.Status == StatusNetwork }

// IsTimeout reports that the fixed timeout elapsed before a response.
func (err *APIError) IsTimeout() bool { return err.Status == StatusTimeout }

// IsSchema reports a response that parsed as JSON but had the wrong shape.
func (err *APIError) IsSchema() bool { return err.Status == StatusSchema }
