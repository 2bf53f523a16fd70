package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/innovatehub/collab/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const helpText = "Available commands: projects, documents, files, newproject, newdoc, upload <path>, chat <text>, history, refresh, status, exit"

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	ShowTab(ctx context.Context, kind models.Kind) error
	NewProject(ctx context.Context) error
	NewDocument(ctx context.Context) error
	Upload(ctx context.Context, path string) error
	Chat(ctx context.Context, text string) error
	History(ctx context.Context) error
	Refresh(ctx context.Context) error
	Status(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Collab CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, when ctx is done, or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the active tab and connectivity (from statusFn):
//
//	help            show available commands
//	projects        switch to the projects tab and list them
//	documents       switch to the documents tab and list them
//	files           switch to the files tab and list them
//	newproject      create a project (interactive name/description prompt)
//	newdoc          create a document (interactive name prompt)
//	upload <path>   upload a local file
//	chat <text>     send a message to the assistant
//	history         print the chat log
//	refresh         reload every list
//	status          show loading/error state of every list
//	exit | quit     leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("collab %s> ", statusFn()))
		line, ok := readLine(reader)
		if !ok {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		rest := strings.TrimLeftFunc(line, unicode.IsSpace)[len(cmd):]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "projects", "documents", "files":
			kind, _ := models.ParseKind(cmd)
			_ = a.ShowTab(ctx, kind)

		case "newproject":
			_ = a.NewProject(ctx)

		case "newdoc":
			_ = a.NewDocument(ctx)

		case "upload":
			path := strings.TrimSpace(rest)
			if path == "" {
				printlnFn("Usage: upload <path>")
				continue
			}
			_ = a.Upload(ctx, path)

		case "chat":
			// Only the separator is dropped; the message is kept as typed.
			text := strings.TrimPrefix(rest, " ")
			if strings.TrimSpace(text) == "" {
				printlnFn("Usage: chat <text>")
				continue
			}
			_ = a.Chat(ctx, text)

		case "history":
			_ = a.History(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
