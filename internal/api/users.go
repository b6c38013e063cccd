package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tmorris/bizlink-admin/internal/models"
)

// ListUsers returns one page of platform users matching the given filters.
func (c *Client) ListUsers(ctx context.Context, p models.UserListParams) (*models.UserPage, error) {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set("perPage", strconv.Itoa(p.PerPage))
	}
	if p.Query != "" {
		q.Set("q", p.Query)
	}
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}

	var out models.UserPage
	if err := c.do(ctx, http.MethodGet, "/admin/users", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/admin/users/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type userStatusRequest struct {
	Status models.UserStatus `json:"status"`
}

// UpdateUserStatus activates or suspends a user account.
func (c *Client) UpdateUserStatus(ctx context.Context, id string, status models.UserStatus) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPatch, "/admin/users/"+id+"/status", nil, userStatusRequest{Status: status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/users/"+id, nil, nil, nil)
}
