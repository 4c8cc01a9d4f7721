package fno

import (
	"context"
	"fmt"
)

// CustomerDetail describes one customer. Email is the join key against
// the CRM contact store; a customer without one cannot be reconciled.
type CustomerDetail struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Customer fetches the detail record for one customer identifier.
func (c *Client) Customer(ctx context.Context, customerID string) (*CustomerDetail, error) {
	var out CustomerDetail
	if err := c.get(ctx, "/customers/"+customerID, nil, &out); err != nil {
		return nil, fmt.Errorf("get customer %s: %w", customerID, err)
	}
	return &out, nil
}
