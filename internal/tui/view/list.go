package view

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"golang.org/x/net/publicsuffix"

	tuitheme "github.com/glabrego/hackernews-cli/internal/tui/theme"

	"github.com/glabrego/hackernews-cli/internal/hn"
)

var reANSICodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

const noLinkLabel = "text post"

type HeadlineParams struct {
	Item  hn.Item
	Index int
	Now   time.Time
	Width int
}

// RenderHeadline draws one story row:
//
//	[  1] Title (host) by user with [n] comments
func RenderHeadline(p HeadlineParams, th tuitheme.Theme) string {
	prefix := th.Index.Render(fmt.Sprintf("[%3d]", p.Index+1)) + " "
	host := "(" + HostLabel(p.Item.URLOr("")) + ")"
	suffix := fmt.Sprintf(" by %s with [%d] comments", p.Item.By, commentCount(p.Item))

	title := strings.TrimSpace(p.Item.TitleOr(""))
	if title == "" {
		title = "(untitled)"
	}
	available := p.Width - visibleLen(prefix) - 1 - visibleLen(host) - visibleLen(suffix)
	if p.Width <= 0 {
		available = utf8.RuneCountInString(title)
	}
	if available < 8 {
		available = 8
	}
	title = truncateRunes(title, available)

	return prefix +
		th.StyleHeadline(p.Item, title) + " " +
		th.Host.Render(host) +
		" by " + th.Author.Render(p.Item.By) +
		" with " + th.Count.Render(fmt.Sprintf("[%d]", commentCount(p.Item))) + " comments"
}

// RenderHeadlineMeta is the dimmed line under a headline.
func RenderHeadlineMeta(p HeadlineParams, th tuitheme.Theme) string {
	parts := []string{fmt.Sprintf("%s points", humanize.Comma(int64(p.Item.ScoreOr(0))))}
	parts = append(parts, RelativeTimeLabel(p.Now, p.Item.Created()))
	return "      " + th.MetaValue.Render(strings.Join(parts, " · "))
}

func commentCount(item hn.Item) int {
	if item.Descendants != nil {
		return *item.Descendants
	}
	return item.KidCount()
}

// HostLabel shortens a link to its registrable domain, news.example.co.uk
// becoming example.co.uk.
func HostLabel(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return noLinkLabel
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Hostname() == "" {
		return "could not parse link"
	}
	host := strings.ToLower(parsed.Hostname())
	if domain, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return domain
	}
	return host
}

func RelativeTimeLabel(now, then time.Time) string {
	if now.IsZero() {
		now = time.Now()
	}
	if then.IsZero() || then.Unix() == 0 {
		return "unknown"
	}
	if then.After(now) {
		return "just now"
	}
	return humanize.RelTime(then, now, "ago", "from now")
}

func truncateRunes(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return strings.Repeat(".", maxLen)
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}

func visibleLen(s string) int {
	return utf8.RuneCountInString(stripANSIText(s))
}

func stripANSIText(s string) string {
	return reANSICodes.ReplaceAllString(s, "")
}
