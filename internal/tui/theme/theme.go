package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/hackernews-cli/internal/hn"
)

type Theme struct {
	Title      lipgloss.Style
	ModePill   lipgloss.Style
	Section    lipgloss.Style
	Index      lipgloss.Style
	Host       lipgloss.Style
	Author     lipgloss.Style
	Count      lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style
	StateIdle  lipgloss.Style
	StateWarn  lipgloss.Style
	StateLoad  lipgloss.Style
	Prompt     lipgloss.Style
	Spinner    lipgloss.Style
	Headline   lipgloss.Style
	TextPost   lipgloss.Style
	DeadOrGone lipgloss.Style
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpYellow := lipgloss.Color("#f9e2af")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpBlue := lipgloss.Color("#89b4fa")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay0 := lipgloss.Color("#6c7086")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")

	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(cpPeach),
		ModePill:   lipgloss.NewStyle().Foreground(cpLavender).Background(cpSurface0).Padding(0, 1),
		Section:    lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		Index:      lipgloss.NewStyle().Foreground(cpOverlay1),
		Host:       lipgloss.NewStyle().Foreground(cpBlue).Faint(true),
		Author:     lipgloss.NewStyle().Foreground(cpMauve),
		Count:      lipgloss.NewStyle().Foreground(cpYellow).Bold(true),
		MetaLabel:  lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue:  lipgloss.NewStyle().Foreground(cpSubtext1),
		StateIdle:  lipgloss.NewStyle().Foreground(cpGreen),
		StateWarn:  lipgloss.NewStyle().Foreground(cpRed),
		StateLoad:  lipgloss.NewStyle().Foreground(cpPeach),
		Prompt:     lipgloss.NewStyle().Bold(true).Foreground(cpPeach),
		Spinner:    lipgloss.NewStyle().Foreground(cpPeach),
		Headline:   lipgloss.NewStyle().Bold(true).Foreground(cpText),
		TextPost:   lipgloss.NewStyle().Italic(true).Foreground(cpLavender),
		DeadOrGone: lipgloss.NewStyle().Foreground(cpOverlay0).Strikethrough(true),
	}
}

// StyleHeadline picks the title style from the kind of item.
func (t Theme) StyleHeadline(item hn.Item, title string) string {
	if title == "" {
		return title
	}
	switch {
	case item.IsDead() || item.IsDeleted():
		return t.DeadOrGone.Render(title)
	case item.URL == nil:
		return t.TextPost.Render(title)
	default:
		return t.Headline.Render(title)
	}
}

// StateLabel colours the name of the client state.
func (t Theme) StateLabel(label string, loading, warning bool) string {
	switch {
	case warning:
		return t.StateWarn.Render(label)
	case loading:
		return t.StateLoad.Render(label)
	default:
		return t.StateIdle.Render(label)
	}
}
