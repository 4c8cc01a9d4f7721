package fno

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// WorkOrderSet is the verbatim work-order payload for one service.
// The pipeline never inspects individual work orders, so the payload
// stays raw JSON all the way into the snapshot.
type WorkOrderSet = json.RawMessage

// WorkOrders fetches the work orders filtered by service identifier.
func (c *Client) WorkOrders(ctx context.Context, serviceID string) (WorkOrderSet, error) {
	q := url.Values{}
	q.Set("service", serviceID)

	var out json.RawMessage
	if err := c.get(ctx, "/work-orders", q, &out); err != nil {
		return nil, fmt.Errorf("list work orders for %s: %w", serviceID, err)
	}
	return out, nil
}
