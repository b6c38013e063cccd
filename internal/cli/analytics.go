package cli

import (
	"context"
	"strconv"
)

func (a *App) Stats(ctx context.Context) error {
	s, err := a.analytics.Summary(ctx)
	if err != nil {
		printlnFn("error:", err)
		return err
	}

	renderTable(a.out, []string{"METRIC", "VALUE"}, [][]string{
		{"Total users", strconv.Itoa(s.TotalUsers)},
		{"Active users", strconv.Itoa(s.ActiveUsers)},
		{"Pending NZBN requests", strconv.Itoa(s.PendingNZBN)},
		{"Jobs posted", strconv.Itoa(s.JobsPosted)},
		{"Connections made", strconv.Itoa(s.ConnectionsMade)},
		{"Messages sent", strconv.Itoa(s.MessagesSent)},
		{"Signups this week", strconv.Itoa(s.SignupsThisWeek)},
		{"Signups last week", strconv.Itoa(s.SignupsLastWeek)},
		{"Active categories", strconv.Itoa(s.ActiveCategories)},
	})
	return nil
}

// Series charts one metric: `series <metric> [days]`.
func (a *App) Series(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: series <signups|jobs|connections|messages> [days]")
		return nil
	}

	days := 0
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil {
			days = n
		}
	}

	points, err := a.analytics.Series(ctx, args[0], days)
	if err != nil {
		printlnFn("error:", err)
		return err
	}
	if len(points) == 0 {
		printlnFn("No data for this window.")
		return nil
	}

	labels := make([]string, len(points))
	values := make([]float64, len(points))
	for i, p := range points {
		labels[i] = p.Timestamp.Format("2006-01-02")
		values[i] = p.Value
	}
	renderBars(a.out, labels, values)
	return nil
}
