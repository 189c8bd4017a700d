package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/glabrego/hackernews-cli/internal/hn"
	"github.com/glabrego/hackernews-cli/internal/render/comment"
	tuitheme "github.com/glabrego/hackernews-cli/internal/tui/theme"
)

const commentIndent = "      "

// ThreadHeader introduces the open item above its comments.
func ThreadHeader(parent hn.Item, depth int, th tuitheme.Theme) string {
	label := fmt.Sprintf("Comments for item id %d", parent.ID)
	if title := parent.TitleOr(""); title != "" {
		label += " with title " + title
	} else {
		label += " by " + parent.By
	}
	if depth > 0 {
		label += fmt.Sprintf(" (depth %d)", depth)
	}
	return th.Section.Render(label)
}

// EmptyThread is shown when an item has no live comments.
func EmptyThread(parent hn.Item) string {
	return fmt.Sprintf("No comments for %d or all were dead (probably spam)", parent.ID)
}

type CommentParams struct {
	Item  hn.Item
	Index int
	Now   time.Time
	Width int
}

// RenderComment draws a comment as a header row followed by its wrapped
// body.
func RenderComment(p CommentParams, th tuitheme.Theme) []string {
	header := th.Index.Render(fmt.Sprintf("[%3d]", p.Index+1)) + " " +
		th.Author.Render(p.Item.By) + " " +
		th.MetaValue.Render(RelativeTimeLabel(p.Now, p.Item.Created()))
	if n := p.Item.KidCount(); n > 0 {
		header += " with " + th.Count.Render(fmt.Sprintf("[%3d]", n)) + " comments"
	}

	width := p.Width - len(commentIndent)
	if p.Width <= 0 {
		width = 72
	}
	body := comment.Lines(p.Item.TextOr(""), width)
	lines := make([]string, 0, len(body)+1)
	lines = append(lines, header)
	for _, line := range body {
		if strings.TrimSpace(line) == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, commentIndent+line)
	}
	return lines
}

// ItemBody renders the text of the open item itself, as on Ask HN posts.
func ItemBody(item hn.Item, width int) []string {
	text := item.TextOr("")
	if text == "" {
		return nil
	}
	return comment.Lines(text, max(1, width))
}
