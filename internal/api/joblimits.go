package api

import (
	"context"
	"net/http"

	"github.com/tmorris/bizlink-admin/internal/models"
)

func (c *Client) GetJobLimits(ctx context.Context) (*models.JobLimits, error) {
	var out models.JobLimits
	if err := c.do(ctx, http.MethodGet, "/admin/job-limits", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateJobLimits(ctx context.Context, limits models.JobLimits) (*models.JobLimits, error) {
	var out models.JobLimits
	if err := c.do(ctx, http.MethodPut, "/admin/job-limits", nil, limits, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
