package view

import (
	"fmt"
	"strings"

	tuitheme "github.com/glabrego/hackernews-cli/internal/tui/theme"
)

func Toolbar(inComments bool) string {
	if inComments {
		return "next/back page | expand N | up | open N | yank N | json N | top/best/new | help | exit"
	}
	return "next/back page | comments N | load N | open N | yank N | user NAME | history | help | exit"
}

// Footer shows where the reader is: the list or thread and the page within it.
func Footer(mode string, page, pages, total int, th tuitheme.Theme) string {
	if pages < 1 {
		pages = 1
	}
	parts := []string{
		th.MetaLabel.Render("view") + " " + th.MetaValue.Render(mode),
		th.MetaLabel.Render("page") + " " + th.MetaValue.Render(fmt.Sprintf("%d/%d", page+1, pages)),
		th.MetaValue.Render(fmt.Sprintf("%d total", total)),
	}
	return strings.Join(parts, " • ")
}

// Message is the status line under the body.
func Message(state string, loading, hasWarning bool, status, warning string, th tuitheme.Theme) string {
	main := "Ready"
	if status != "" {
		main = status
	} else if hasWarning {
		main = warning
	}
	return fmt.Sprintf("%s: %s | %s", th.StateLabel("state", loading, hasWarning), state, th.MetaValue.Render(main))
}

// PageCount is the number of pages needed for total rows.
func PageCount(total, pageSize int) int {
	if pageSize < 1 || total < 1 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}
