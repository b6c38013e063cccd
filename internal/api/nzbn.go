package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tmorris/bizlink-admin/internal/models"
)

// ListNZBNRequests returns one page of business-registration requests.
func (c *Client) ListNZBNRequests(ctx context.Context, p models.NZBNListParams) (*models.NZBNPage, error) {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set("perPage", strconv.Itoa(p.PerPage))
	}
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}

	var out models.NZBNPage
	if err := c.do(ctx, http.MethodGet, "/admin/nzbn-requests", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveNZBNRequest marks a registration request as verified.
func (c *Client) ApproveNZBNRequest(ctx context.Context, id string) (*models.NZBNRequest, error) {
	var out models.NZBNRequest
	if err := c.do(ctx, http.MethodPost, "/admin/nzbn-requests/"+id+"/approve", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type declineRequest struct {
	Reason string `json:"reason"`
}

// DeclineNZBNRequest rejects a registration request with a reason shown to
// the submitting user.
func (c *Client) DeclineNZBNRequest(ctx context.Context, id, reason string) (*models.NZBNRequest, error) {
	var out models.NZBNRequest
	if err := c.do(ctx, http.MethodPost, "/admin/nzbn-requests/"+id+"/decline", nil, declineRequest{Reason: reason}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
