package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(args ...any) { fmt.Println(args...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	Users(ctx context.Context, args []string) error
	UserShow(ctx context.Context, args []string) error
	SuspendUser(ctx context.Context, args []string) error
	ActivateUser(ctx context.Context, args []string) error
	DeleteUser(ctx context.Context, args []string) error
	NZBNRequests(ctx context.Context, args []string) error
	ApproveNZBN(ctx context.Context, args []string) error
	DeclineNZBN(ctx context.Context, args []string) error
	Categories(ctx context.Context) error
	AddCategory(ctx context.Context, args []string) error
	RenameCategory(ctx context.Context, args []string) error
	DeleteCategory(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
	Series(ctx context.Context, args []string) error
	Limits(ctx context.Context) error
	SetLimits(ctx context.Context) error
}

const loggedInHelp = `Available commands:
  users [page] [query]      list users        user <id>        show one user
  suspend <id> | activate <id> | deluser <id>
  nzbn [status] [page]      registration queue
  approve <id> | decline <id> [reason...]
  categories | addcat <name...> | renamecat <id> <name...> | delcat <id>
  stats | series <metric> [days]
  limits | setlimits
  status | logout | exit`

const loggedOutHelp = "Available commands: login, exit"

// runREPL starts the read-eval-print loop of the console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Every accepted line counts as user activity: onActivity runs before the
// command is dispatched, so a session whose token lapsed while the console
// sat idle is refreshed before the command's API call goes out.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, onActivity func(), scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("badm %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		onActivity()

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(loggedInHelp)
			} else {
				printlnFn(loggedOutHelp)
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "status":
			_ = a.Status(ctx)

		case "u", "users":
			_ = a.Users(ctx, args)

		case "user":
			_ = a.UserShow(ctx, args)

		case "suspend":
			_ = a.SuspendUser(ctx, args)

		case "activate":
			_ = a.ActivateUser(ctx, args)

		case "deluser":
			_ = a.DeleteUser(ctx, args)

		case "nzbn":
			_ = a.NZBNRequests(ctx, args)

		case "approve":
			_ = a.ApproveNZBN(ctx, args)

		case "decline":
			_ = a.DeclineNZBN(ctx, args)

		case "categories":
			_ = a.Categories(ctx)

		case "addcat":
			_ = a.AddCategory(ctx, args)

		case "renamecat":
			_ = a.RenameCategory(ctx, args)

		case "delcat":
			_ = a.DeleteCategory(ctx, args)

		case "stats":
			_ = a.Stats(ctx)

		case "series":
			_ = a.Series(ctx, args)

		case "limits":
			_ = a.Limits(ctx)

		case "setlimits":
			_ = a.SetLimits(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
