package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/codelog/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	WhoAmI(ctx context.Context, args []string) error
	Refresh(ctx context.Context, args []string) error

	Home(ctx context.Context, args []string) error
	Post(ctx context.Context, args []string) error

	Feed(ctx context.Context, args []string) error
	Like(ctx context.Context, args []string) error
	Unlike(ctx context.Context, args []string) error
	Comment(ctx context.Context, args []string) error
	Comments(ctx context.Context, args []string) error
	EditComment(ctx context.Context, args []string) error
	DeleteComment(ctx context.Context, args []string) error

	Profile(ctx context.Context, args []string) error
	MyPosts(ctx context.Context, args []string) error
	UpdateInfo(ctx context.Context, args []string) error
	UpdatePassword(ctx context.Context, args []string) error
	DeleteAccount(ctx context.Context, args []string) error
}

type command struct {
	name    string
	aliases []string
	usage   string
	auth    bool
	run     func(execIface, context.Context, []string) error
}

var commands = []command{
	{name: "register", usage: "create an account", run: execIface.Register},
	{name: "login", usage: "sign in", run: execIface.Login},
	{name: "home", usage: "streak and posting status", auth: true, run: execIface.Home},
	{name: "post", usage: "write a journal entry", auth: true, run: execIface.Post},
	{name: "feed", aliases: []string{"f"}, usage: "feed [page|next|prev]", auth: true, run: execIface.Feed},
	{name: "like", usage: "like <n|post-id>", auth: true, run: execIface.Like},
	{name: "unlike", usage: "unlike <n|post-id>", auth: true, run: execIface.Unlike},
	{name: "comment", usage: "comment <n|post-id>", auth: true, run: execIface.Comment},
	{name: "comments", usage: "comments <n|post-id>", auth: true, run: execIface.Comments},
	{name: "editcomment", usage: "editcomment <n|post-id> <comment-id>", auth: true, run: execIface.EditComment},
	{name: "delcomment", usage: "delcomment <n|post-id> <comment-id>", auth: true, run: execIface.DeleteComment},
	{name: "profile", usage: "account details", auth: true, run: execIface.Profile},
	{name: "myposts", usage: "your own posts", auth: true, run: execIface.MyPosts},
	{name: "update-info", usage: "change email and/or username", auth: true, run: execIface.UpdateInfo},
	{name: "update-password", usage: "change password", auth: true, run: execIface.UpdatePassword},
	{name: "delete-account", usage: "delete your account", auth: true, run: execIface.DeleteAccount},
	{name: "whoami", usage: "show the logged-in user", auth: true, run: execIface.WhoAmI},
	{name: "refresh", usage: "renew the access token", auth: true, run: execIface.Refresh},
	{name: "logout", usage: "sign out", auth: true, run: execIface.Logout},
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
		for _, alias := range c.aliases {
			if alias == name {
				return c, true
			}
		}
	}
	return command{}, false
}

func helpText(loggedIn bool) string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, c := range commands {
		if c.auth != loggedIn {
			continue
		}
		fmt.Fprintf(&b, "  %-16s %s\n", c.name, c.usage)
	}
	fmt.Fprintf(&b, "  %-16s %s", "exit", "leave the program")
	return b.String()
}

// runREPL starts a read–eval–print loop for the CodeLog CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The prompt shows statusFn(), which carries
// the user name and the posting countdown. Commands that need a session
// are refused while logged out, and vice versa for register/login.
// An error returned by a command is printed as its user-facing message.
// The loop exits on EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("codelog %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printlnFn(helpText(a.isLoggedIn()))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		cmd, ok := lookup(name)
		switch {
		case !ok:
			printlnFn("Unknown command:", name)
		case cmd.auth && !a.isLoggedIn():
			printlnFn("Please log in first.")
		case !cmd.auth && a.isLoggedIn():
			printlnFn("You are already logged in.")
		default:
			// an ended session was already reported by the redirect
			if err := cmd.run(a, ctx, args); err != nil && !errors.Is(err, services.ErrSessionEnded) {
				printlnFn(services.UserMessage(err))
			}
		}

		if ctx.Err() != nil {
			return
		}
	}
}
