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
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Add(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Unlock(ctx context.Context, args []string) error
	Insight(ctx context.Context, args []string) error
	Paid(ctx context.Context, args []string) error
	Theme(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the MoodFlow CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - theme          — show or set the UI theme
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - add            — write a journal entry
//	  - list           — list entries with sentiment
//	  - unlock <id>    — request a payment link for an entry's AI insight
//	  - paid <url>     — hand back the payment provider's redirect URL
//	  - insight <id>   — view/generate the AI insight for an unlocked entry
//	  - logout, theme, help, exit | quit
//
// Any errors returned by command handlers are reported by the handlers
// themselves. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mf %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: add, (l)ist, unlock <id>, paid <url>, insight <id>, theme, logout, exit")
			} else {
				printlnFn("Available commands: register, login, theme, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "add":
			_ = a.Add(ctx)

		case "l", "list":
			_ = a.List(ctx, args)

		case "unlock":
			_ = a.Unlock(ctx, args)

		case "paid":
			_ = a.Paid(ctx, args)

		case "insight":
			_ = a.Insight(ctx, args)

		case "theme":
			_ = a.Theme(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
