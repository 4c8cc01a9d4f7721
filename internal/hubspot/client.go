// Package hubspot is a minimal client for the HubSpot CRM contacts API:
// exact-match contact search by email and sparse property patches.
package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// ProactiveRate keeps requests under HubSpot's burst limit.
	ProactiveRate = 8

	contactsPath = "/crm/v3/objects/contacts"
)

// Client is an authenticated HubSpot CRM client.
type Client struct {
	http    *http.Client
	baseURL string
	limiter *rate.Limiter
}

// NewClient creates a HubSpot client with a static bearer token.
func NewClient(ctx context.Context, baseURL, token string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	hc := oauth2.NewClient(ctx, ts)
	hc.Timeout = DefaultTimeout

	return &Client{
		http:    hc,
		baseURL: strings.TrimRight(baseURL, "/"),
		limiter: rate.NewLimiter(rate.Limit(ProactiveRate), 1),
	}
}

// searchRequest is the contact search body: one filter group with one
// exact-equality filter on the email property.
type searchRequest struct {
	FilterGroups []filterGroup `json:"filterGroups"`
}

type filterGroup struct {
	Filters []filter `json:"filters"`
}

type filter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

// searchResponse is the contact search result shape.
type searchResponse struct {
	Results []struct {
		ID string `json:"id"`
	} `json:"results"`
}

// updateRequest is the contact patch body.
type updateRequest struct {
	Properties map[string]any `json:"properties"`
}

// FindContactByEmail searches for a contact with an exact email match
// and returns its identifier. When more than one contact matches, the
// first result wins. Returns ErrContactNotFound when nothing matches.
func (c *Client) FindContactByEmail(ctx context.Context, email string) (string, error) {
	body := searchRequest{
		FilterGroups: []filterGroup{
			{Filters: []filter{
				{PropertyName: "email", Operator: "EQ", Value: email},
			}},
		},
	}

	var out searchResponse
	if err := c.do(ctx, http.MethodPost, contactsPath+"/search", body, &out); err != nil {
		return "", fmt.Errorf("search contact: %w", err)
	}

	if len(out.Results) == 0 {
		return "", ErrContactNotFound
	}
	return out.Results[0].ID, nil
}

// UpdateContact applies a sparse property patch to one contact.
func (c *Client) UpdateContact(ctx context.Context, contactID string, properties map[string]any) error {
	body := updateRequest{Properties: properties}
	if err := c.do(ctx, http.MethodPatch, contactsPath+"/"+contactID, body, nil); err != nil {
		return fmt.Errorf("update contact %s: %w", contactID, err)
	}
	return nil
}

// do issues one JSON request. Any non-200 status is returned as an
// *APIError carrying the response body.
func (c *Client) do(ctx context.Context, method, path string, body, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: buf.String()}
	}

	if v == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
