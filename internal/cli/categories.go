package cli

import (
	"context"
	"strconv"
	"strings"
)

func (a *App) Categories(ctx context.Context) error {
	categories, err := a.admin.ListCategories(ctx)
	if err != nil {
		printlnFn("error:", err)
		return err
	}

	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{c.ID, c.Name, c.Slug, strconv.Itoa(c.UserCount)})
	}
	renderTable(a.out, []string{"ID", "NAME", "SLUG", "USERS"}, rows)
	return nil
}

func (a *App) AddCategory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: addcat <name...>")
		return nil
	}
	c, err := a.admin.CreateCategory(ctx, strings.Join(args, " "))
	if err != nil {
		printlnFn("error:", err)
		return err
	}
	printlnFn("Created category", c.Name, "("+c.ID+")")
	return nil
}

func (a *App) RenameCategory(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: renamecat <id> <name...>")
		return nil
	}
	c, err := a.admin.RenameCategory(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		printlnFn("error:", err)
		return err
	}
	printlnFn("Renamed category to", c.Name)
	return nil
}

func (a *App) DeleteCategory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: delcat <id>")
		return nil
	}
	if err := a.admin.DeleteCategory(ctx, args[0]); err != nil {
		printlnFn("error:", err)
		return err
	}
	printlnFn("Category deleted.")
	return nil
}
