package fno

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ChangeRecord is one service-change event from the AEX change feed.
// NewServiceID is the linkage key for all enrichment; records without
// it cannot be processed. ProductID is optional.
type ChangeRecord struct {
	NewServiceID  string `json:"new_service_id"`
	EffectiveDate string `json:"effective_date"`
	Direction     string `json:"direction"`
	ProductID     string `json:"product_id"`
}

// ChangePage is one page of the change listing.
type ChangePage struct {
	Items []ChangeRecord `json:"items"`
}

// ServiceChanges fetches one page of service changes updated after the
// given lower bound. Pages are 1-based; updatedAfter is formatted as
// "YYYY-MM-DD HH:MM:SS" in the source system's local time.
func (c *Client) ServiceChanges(ctx context.Context, updatedAfter string, page int) (*ChangePage, error) {
	q := url.Values{}
	q.Set("updated_after", updatedAfter)
	q.Set("page", strconv.Itoa(page))

	var out ChangePage
	if err := c.get(ctx, "/service-changes", q, &out); err != nil {
		return nil, fmt.Errorf("list service changes: %w", err)
	}
	return &out, nil
}
