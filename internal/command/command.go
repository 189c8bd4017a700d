// Package command parses the line typed at the prompt.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/glabrego/hackernews-cli/internal/hn"
	"github.com/glabrego/hackernews-cli/internal/nav"
)

type Kind int

const (
	Stories Kind = iota + 1
	Refresh
	Next
	Back
	Comments
	Expand
	Up
	Load
	Open
	Yank
	User
	History
	JSON
	Help
	Exit
)

var names = map[Kind]string{
	Stories:  "stories",
	Refresh:  "refresh",
	Next:     "next",
	Back:     "back",
	Comments: "comments",
	Expand:   "expand",
	Up:       "up",
	Load:     "load",
	Open:     "open",
	Yank:     "yank",
	User:     "user",
	History:  "history",
	JSON:     "json",
	Help:     "help",
	Exit:     "exit",
}

func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Command is one parsed prompt line. Index is zero-based; the prompt accepts
// the one-based numbers printed next to each row.
type Command struct {
	Kind     Kind
	Category hn.Category
	Index    int
	Name     string
}

// Mode reports which view the command needs.
func (c Command) Mode() nav.Mode {
	switch c.Kind {
	case Comments, Load:
		return nav.ModeStories
	case Expand, Up:
		return nav.ModeComments
	}
	return nav.ModeAny
}

// Fetches reports whether the command can go to the network. Stories and
// paging may still be served from the cache; the rest never fetch.
func (c Command) Fetches() bool {
	switch c.Kind {
	case Stories, Refresh, Next, Back, Comments, Expand, Up, Load, User:
		return true
	}
	return false
}

var (
	ErrEmpty         = errors.New("empty command")
	ErrUnknown       = errors.New("could not understand command, try help")
	ErrInvalidNumber = errors.New("received invalid number")
	ErrMissingName   = errors.New("missing user name")
)

const HelpText = `top | best | new  show that story list, reprinting the cached page
refresh           fetch the current story list again
next              show the next 10 stories or comments
back              show the previous 10 stories or comments
comments N        open the comments of story N
expand N          open the replies to comment N
up                return to the parent of the expanded comment
load N            save the page linked by story N as local html
open N            open the link of story N in the browser
yank N            copy the link of story N to the clipboard
user NAME         show a user's profile
history           list the items opened this session
json N            show the raw item N
help              show this help
exit | quit       leave

N is the number printed next to each row.`

// Parse turns a prompt line into a Command.
func Parse(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(fields) == 0 {
		return Command{}, ErrEmpty
	}
	verb, args := fields[0], fields[1:]

	switch verb {
	case "top", "best", "new":
		return noArgs(Command{Kind: Stories, Category: hn.Category(verb)}, args)
	case "refresh":
		return noArgs(Command{Kind: Refresh}, args)
	case "next":
		return noArgs(Command{Kind: Next}, args)
	case "back", "prev":
		return noArgs(Command{Kind: Back}, args)
	case "up":
		return noArgs(Command{Kind: Up}, args)
	case "history":
		return noArgs(Command{Kind: History}, args)
	case "help", "?":
		return noArgs(Command{Kind: Help}, args)
	case "exit", "quit":
		return noArgs(Command{Kind: Exit}, args)
	case "comments":
		return indexed(Comments, args)
	case "expand":
		return indexed(Expand, args)
	case "load":
		return indexed(Load, args)
	case "open":
		return indexed(Open, args)
	case "yank":
		return indexed(Yank, args)
	case "json":
		return indexed(JSON, args)
	case "user":
		if len(args) != 1 {
			return Command{}, ErrMissingName
		}
		// Names are case sensitive; re-read the original token.
		return Command{Kind: User, Name: originalToken(line, 1)}, nil
	}
	return Command{}, ErrUnknown
}

func noArgs(c Command, args []string) (Command, error) {
	if len(args) != 0 {
		return Command{}, fmt.Errorf("%s takes no arguments: %w", c.Kind, ErrUnknown)
	}
	return c, nil
}

func indexed(kind Kind, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, fmt.Errorf("%s needs a number: %w", kind, ErrInvalidNumber)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return Command{}, fmt.Errorf("%s %q: %w", kind, args[0], ErrInvalidNumber)
	}
	return Command{Kind: kind, Index: n - 1}, nil
}

func originalToken(line string, i int) string {
	fields := strings.Fields(line)
	if i >= len(fields) {
		return ""
	}
	return fields[i]
}
