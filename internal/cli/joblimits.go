package cli

import (
	"context"
	"strconv"
)

func (a *App) Limits(ctx context.Context) error {
	limits, err := a.admin.JobLimits(ctx)
	if err != nil {
		printlnFn("error:", err)
		return err
	}

	renderTable(a.out, []string{"TIER", "JOBS PER WINDOW"}, [][]string{
		{"Free", strconv.Itoa(limits.FreeTierLimit)},
		{"Standard", strconv.Itoa(limits.StandardTierLimit)},
		{"Premium", strconv.Itoa(limits.PremiumTierLimit)},
	})
	printlnFn("Rolling window:", limits.WindowDays, "days")
	return nil
}

// SetLimits walks through the four values interactively; an empty answer
// keeps the current value.
func (a *App) SetLimits(ctx context.Context) error {
	current, err := a.admin.JobLimits(ctx)
	if err != nil {
		printlnFn("error:", err)
		return err
	}

	next := *current
	fields := []struct {
		prompt string
		value  *int
	}{
		{"Free tier limit", &next.FreeTierLimit},
		{"Standard tier limit", &next.StandardTierLimit},
		{"Premium tier limit", &next.PremiumTierLimit},
		{"Window (days)", &next.WindowDays},
	}

	for _, f := range fields {
		answer, err := GetSimpleText(a.reader, f.prompt+" ["+strconv.Itoa(*f.value)+"]", a.out)
		if err != nil {
			return err
		}
		if answer == "" {
			continue
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			printlnFn("Not a number, keeping current value.")
			continue
		}
		*f.value = n
	}

	updated, err := a.admin.SetJobLimits(ctx, next)
	if err != nil {
		printlnFn("error:", err)
		return err
	}
	printlnFn("Limits updated:", updated.FreeTierLimit, "/", updated.StandardTierLimit, "/", updated.PremiumTierLimit,
		"per", updated.WindowDays, "days")
	return nil
}
