package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tmorris/bizlink-admin/internal/common"
	"github.com/tmorris/bizlink-admin/internal/models"
)

// Metrics the series endpoint knows about.
var knownMetrics = map[string]bool{
	"signups":     true,
	"jobs":        true,
	"connections": true,
	"messages":    true,
}

const defaultSeriesWindow = 30 * 24 * time.Hour

// AnalyticsClient is the slice of the API client the analytics service uses.
type AnalyticsClient interface {
	AnalyticsSummary(ctx context.Context) (*models.AnalyticsSummary, error)
	AnalyticsSeries(ctx context.Context, p models.SeriesParams) ([]models.SeriesPoint, error)
}

// AnalyticsService fetches dashboard numbers and metric time series.
type AnalyticsService interface {
	Summary(ctx context.Context) (*models.AnalyticsSummary, error)
	Series(ctx context.Context, metric string, days int) ([]models.SeriesPoint, error)
}

type analyticsService struct {
	client AnalyticsClient
	now    func() time.Time
}

func NewAnalyticsService(client AnalyticsClient) AnalyticsService {
	return &analyticsService{client: client, now: time.Now}
}

func (s *analyticsService) Summary(ctx context.Context) (*models.AnalyticsSummary, error) {
	return s.client.AnalyticsSummary(ctx)
}

// Series fetches a daily series for the given metric over the last `days`
// days (default 30).
func (s *analyticsService) Series(ctx context.Context, metric string, days int) ([]models.SeriesPoint, error) {
	if !knownMetrics[metric] {
		return nil, fmt.Errorf("unknown metric %q: %w", metric, common.ErrInvalidArgument)
	}

	to := s.now()
	from := to.Add(-defaultSeriesWindow)
	if days > 0 {
		from = to.AddDate(0, 0, -days)
	}

	return s.client.AnalyticsSeries(ctx, models.SeriesParams{
		Metric:   metric,
		From:     from,
		To:       to,
		Interval: "day",
	})
}
