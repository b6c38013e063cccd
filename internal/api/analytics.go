package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/tmorris/bizlink-admin/internal/models"
)

// AnalyticsSummary fetches the dashboard counters.
func (c *Client) AnalyticsSummary(ctx context.Context) (*models.AnalyticsSummary, error) {
	var out models.AnalyticsSummary
	if err := c.do(ctx, http.MethodGet, "/admin/analytics/summary", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyticsSeries fetches one metric's time series over the given window.
func (c *Client) AnalyticsSeries(ctx context.Context, p models.SeriesParams) ([]models.SeriesPoint, error) {
	q := url.Values{}
	q.Set("metric", p.Metric)
	if !p.From.IsZero() {
		q.Set("from", p.From.Format(time.RFC3339))
	}
	if !p.To.IsZero() {
		q.Set("to", p.To.Format(time.RFC3339))
	}
	if p.Interval != "" {
		q.Set("interval", p.Interval)
	}

	var out struct {
		Points []models.SeriesPoint `json:"points"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/analytics/series", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Points, nil
}
