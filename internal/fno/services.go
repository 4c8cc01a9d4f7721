package fno

import (
	"context"
	"fmt"
)

// ServiceDetail describes one service. CustomerID links the service to
// its customer; the on-network fields feed the CRM reconciliation.
type ServiceDetail struct {
	ID            string `json:"id,omitempty"`
	CustomerID    string `json:"customer_id,omitempty"`
	OnNetwork     *bool  `json:"on_network,omitempty"`
	OnNetworkDate string `json:"on_network_date,omitempty"`
	Status        string `json:"status,omitempty"`
}

// Service fetches the detail record for one service identifier.
func (c *Client) Service(ctx context.Context, serviceID string) (*ServiceDetail, error) {
	var out ServiceDetail
	if err := c.get(ctx, "/services/"+serviceID, nil, &out); err != nil {
		return nil, fmt.Errorf("get service %s: %w", serviceID, err)
	}
	return &out, nil
}
