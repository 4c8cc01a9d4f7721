package fno

import (
	"context"
	"fmt"
)

// PricingEntry is one entry in a product's ordered price list.
type PricingEntry struct {
	Value *float64 `json:"value,omitempty"`
	Term  string   `json:"term,omitempty"`
}

// ProductDetail describes one product. Only the display name and the
// first pricing entry are used downstream.
type ProductDetail struct {
	ID      string         `json:"id,omitempty"`
	Name    string         `json:"name,omitempty"`
	Pricing []PricingEntry `json:"pricing,omitempty"`
}

// Product fetches the detail record for one product identifier.
func (c *Client) Product(ctx context.Context, productID string) (*ProductDetail, error) {
	var out ProductDetail
	if err := c.get(ctx, "/products/"+productID, nil, &out); err != nil {
		return nil, fmt.Errorf("get product %s: %w", productID, err)
	}
	return &out, nil
}
