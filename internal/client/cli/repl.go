package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Search(ctx context.Context, query string) error
	Clear(ctx context.Context) error
	More(ctx context.Context) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) error
	Profile(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Stats(ctx context.Context) error
}

// runREPL reads commands from reader and dispatches them to a until EOF,
// "exit" or "quit".
//
//	Not logged in:
//	  - help           show available commands
//	  - login          store a bearer token
//	  - stats          request statistics
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - (l)ist         show the current list
//	  - search <text>  search posts
//	  - clear          leave search and show your feed
//	  - more           load the next page of your feed
//	  - delete <id>    delete a post
//	  - profile        update profile settings
//	  - logout         forget the stored token
//
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("pk%s> ", statusFn()))
		line, rerr := readLine(reader)
		if rerr != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: (l)ist, search <text>, clear, more, delete <id>, profile, stats, logout, exit")
			} else {
				printlnFn("Available commands: login, stats, exit")
			}

		case "l", "list":
			err = a.List(ctx)

		case "search", "s":
			if len(args) == 0 {
				printlnFn("Usage: search <text> (use 'clear' to leave search)")
				continue
			}
			err = a.Search(ctx, strings.Join(args, " "))

		case "clear":
			err = a.Clear(ctx)

		case "more", "m":
			err = a.More(ctx)

		case "delete", "rm":
			if len(args) != 1 {
				printlnFn("Usage: delete <id>")
				continue
			}
			err = a.Delete(ctx, args[0])

		case "profile":
			err = a.Profile(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "stats":
			err = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		if err != nil {
			printlnFn("Error:", describeError(err))
		}
	}
}
