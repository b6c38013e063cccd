package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/tmorris/bizlink-admin/internal/models"
)

// Users lists platform users: `users [page] [query...]`.
func (a *App) Users(ctx context.Context, args []string) error {
	params := models.UserListParams{Page: 1, PerPage: 20}
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			params.Page = n
			args = args[1:]
		}
	}
	if len(args) > 0 {
		params.Query = strings.Join(args, " ")
	}

	page, err := a.admin.ListUsers(ctx, params)
	if err != nil {
		printlnFn("error:", err)
		return err
	}

	rows := make([][]string, 0, len(page.Users))
	for _, u := range page.Users {
		rows = append(rows, []string{
			u.ID, u.Email, u.BusinessName, u.Role, string(u.Status),
			u.CreatedAt.Format("2006-01-02"),
		})
	}
	renderTable(a.out, []string{"ID", "EMAIL", "BUSINESS", "ROLE", "STATUS", "JOINED"}, rows)
	printlnFn("Page", page.Page, "of", totalPages(page.Total, page.PerPage), "-", page.Total, "users")
	return nil
}

func (a *App) UserShow(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: user <id>")
		return nil
	}
	u, err := a.admin.GetUser(ctx, args[0])
	if err != nil {
		printlnFn("error:", err)
		return err
	}

	rows := [][]string{
		{"ID", u.ID},
		{"Email", u.Email},
		{"Name", strings.TrimSpace(u.FirstName + " " + u.LastName)},
		{"Business", u.BusinessName},
		{"Role", u.Role},
		{"Status", string(u.Status)},
		{"Joined", u.CreatedAt.Format("2006-01-02 15:04")},
	}
	if u.LastLoginAt != nil {
		rows = append(rows, []string{"Last login", u.LastLoginAt.Format("2006-01-02 15:04")})
	}
	renderTable(a.out, []string{"FIELD", "VALUE"}, rows)
	return nil
}

func (a *App) SuspendUser(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: suspend <id>")
		return nil
	}
	u, err := a.admin.SuspendUser(ctx, args[0])
	if err != nil {
		printlnFn("error:", err)
		return err
	}
	printlnFn("User", u.Email, "is now", string(u.Status))
	return nil
}

func (a *App) ActivateUser(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: activate <id>")
		return nil
	}
	u, err := a.admin.ActivateUser(ctx, args[0])
	if err != nil {
		printlnFn("error:", err)
		return err
	}
	printlnFn("User", u.Email, "is now", string(u.Status))
	return nil
}

func (a *App) DeleteUser(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: deluser <id>")
		return nil
	}
	confirm, err := GetSimpleText(a.reader, "Delete user "+args[0]+"? (yes/no)", a.out)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		printlnFn("Cancelled.")
		return nil
	}
	if err := a.admin.DeleteUser(ctx, args[0]); err != nil {
		printlnFn("error:", err)
		return err
	}
	printlnFn("User deleted.")
	return nil
}

func totalPages(total, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		pages = 1
	}
	return pages
}
