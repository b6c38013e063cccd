package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/tmorris/bizlink-admin/internal/models"
)

// NZBNRequests shows the registration queue: `nzbn [status] [page]`.
// Status defaults to pending.
func (a *App) NZBNRequests(ctx context.Context, args []string) error {
	params := models.NZBNListParams{Page: 1, PerPage: 20}
	for _, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			params.Page = n
			continue
		}
		params.Status = models.NZBNStatus(arg)
	}

	page, err := a.admin.ListNZBNRequests(ctx, params)
	if err != nil {
		printlnFn("error:", err)
		return err
	}

	rows := make([][]string, 0, len(page.Requests))
	for _, r := range page.Requests {
		rows = append(rows, []string{
			r.ID, r.NZBN, r.BusinessName, r.UserEmail, string(r.Status),
			r.SubmittedAt.Format("2006-01-02"),
		})
	}
	renderTable(a.out, []string{"ID", "NZBN", "BUSINESS", "SUBMITTED BY", "STATUS", "DATE"}, rows)
	printlnFn("Page", page.Page, "of", totalPages(page.Total, page.PerPage), "-", page.Total, "requests")
	return nil
}

func (a *App) ApproveNZBN(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: approve <id>")
		return nil
	}
	r, err := a.admin.ApproveNZBN(ctx, args[0])
	if err != nil {
		printlnFn("error:", err)
		return err
	}
	printlnFn("Approved", r.NZBN, "for", r.BusinessName)
	return nil
}

// DeclineNZBN rejects a request: `decline <id> [reason...]`. When the
// reason is not given inline it is prompted for; the platform shows it to
// the submitting user, so it cannot be empty.
func (a *App) DeclineNZBN(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: decline <id> [reason...]")
		return nil
	}

	reason := strings.Join(args[1:], " ")
	if reason == "" {
		var err error
		reason, err = GetSimpleText(a.reader, "Reason for declining", a.out)
		if err != nil {
			return err
		}
	}

	r, err := a.admin.DeclineNZBN(ctx, args[0], reason)
	if err != nil {
		printlnFn("error:", err)
		return err
	}
	printlnFn("Declined", r.NZBN, "for", r.BusinessName)
	return nil
}
