package hubspot

import (
	"errors"
	"fmt"
)

// ErrContactNotFound indicates no contact matched the searched email.
var ErrContactNotFound = errors.New("hubspot: contact not found")

// APIError represents a non-success response from the HubSpot API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hubspot: API error %d: %s", e.StatusCode, e.Body)
}
