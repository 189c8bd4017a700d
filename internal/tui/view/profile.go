package view

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/glabrego/hackernews-cli/internal/hn"
	"github.com/glabrego/hackernews-cli/internal/render/comment"
	"github.com/glabrego/hackernews-cli/internal/storage"
	tuitheme "github.com/glabrego/hackernews-cli/internal/tui/theme"
)

// UserLines renders a profile.
func UserLines(user hn.User, now time.Time, width int, th tuitheme.Theme) []string {
	lines := []string{
		th.Section.Render("User " + user.ID),
		th.MetaLabel.Render("karma") + " " + th.MetaValue.Render(humanize.Comma(int64(user.Karma))),
		th.MetaLabel.Render("created") + " " + th.MetaValue.Render(RelativeTimeLabel(now, user.CreatedAt())),
		th.MetaLabel.Render("submissions") + " " + th.MetaValue.Render(humanize.Comma(int64(len(user.Submitted)))),
	}
	if about := comment.Lines(user.About, max(1, width)); len(about) > 0 {
		lines = append(lines, "")
		lines = append(lines, about...)
	}
	return lines
}

// HistoryLines lists the items opened this session, newest first.
func HistoryLines(entries []storage.HistoryEntry, now time.Time, width int, th tuitheme.Theme) []string {
	if len(entries) == 0 {
		return []string{"Nothing opened yet"}
	}
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, th.Section.Render("Opened this session"))
	for _, e := range entries {
		when := RelativeTimeLabel(now, e.OpenedAt)
		label := fmt.Sprintf("%d  %s", e.ItemID, e.Title)
		available := width - visibleLen(when) - 2
		if width > 0 && available > 0 {
			label = truncateRunes(label, available)
		}
		lines = append(lines, label+"  "+th.MetaValue.Render(when))
	}
	return lines
}
