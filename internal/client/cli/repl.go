package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	render()
	Home(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Refresh(ctx context.Context) error
	OpenTopic(ctx context.Context, id int64) error
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Settings(ctx context.Context) error
	NewTopic(ctx context.Context) error
	CloseTopic(ctx context.Context) error
	Comment(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the forum client.
//
// It reads a line, parses the first token as the command, and dispatches to
// methods on 'a'. Unknown commands are reported back to the user. The loop
// exits on EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers toast
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "forum> %s > ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: (l)ist, search, open <id>, back, new, close, comment, profile, settings, logout, refresh, exit")
			} else {
				fmt.Fprintln(out, "Available commands: (l)ist, search, open <id>, back, login, signup, refresh, exit")
			}

		case "l", "list":
			_ = a.Home(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(parts[1:], " "))

		case "refresh":
			_ = a.Refresh(ctx)

		case "open":
			if len(parts) < 2 {
				fmt.Fprintln(out, "Usage: open <id>")
				continue
			}
			id, err := strconv.ParseInt(parts[1], 10, 64)
			if err != nil {
				fmt.Fprintln(out, "Topic ids are numeric.")
				continue
			}
			_ = a.OpenTopic(ctx, id)

		case "back", "home":
			_ = a.Home(ctx)

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "new":
			_ = a.NewTopic(ctx)

		case "close":
			_ = a.CloseTopic(ctx)

		case "comment":
			_ = a.Comment(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
