package api

import (
	"context"
	"net/http"

	"github.com/tmorris/bizlink-admin/internal/models"
)

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out struct {
		Categories []models.Category `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

type categoryRequest struct {
	Name string `json:"name"`
}

func (c *Client) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	var out models.Category
	if err := c.do(ctx, http.MethodPost, "/admin/categories", nil, categoryRequest{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id, name string) (*models.Category, error) {
	var out models.Category
	if err := c.do(ctx, http.MethodPut, "/admin/categories/"+id, nil, categoryRequest{Name: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/categories/"+id, nil, nil, nil)
}
