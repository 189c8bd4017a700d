package actions

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/hackernews-cli/internal/app"
	"github.com/glabrego/hackernews-cli/internal/hn"
	"github.com/glabrego/hackernews-cli/internal/storage"
)

const DefaultTimeout = 10 * time.Second

type Service interface {
	LoadStories(ctx context.Context, category hn.Category, page, pageSize int) (app.Stories, error)
	LoadStoryPage(ctx context.Context, ids hn.IDList, page, pageSize int) ([]hn.Item, error)
	OpenItem(ctx context.Context, id int64) (hn.Item, []hn.Item, error)
	ExpandComment(ctx context.Context, comment hn.Item) (hn.Item, []hn.Item, error)
	FetchUser(ctx context.Context, name string) (hn.User, error)
	History(ctx context.Context, limit int) ([]storage.HistoryEntry, error)
	DownloadPage(ctx context.Context, item hn.Item, dir string) (string, error)
}

type StoriesLoadedMsg struct {
	Stories  app.Stories
	Duration time.Duration
}

type StoryPageLoadedMsg struct {
	Category hn.Category
	Page     int
	Items    []hn.Item
}

type ItemOpenedMsg struct {
	Item     hn.Item
	Comments []hn.Item
}

// CommentExpandedMsg carries the refreshed comment found at Index and its
// children.
type CommentExpandedMsg struct {
	Index    int
	Parent   hn.Item
	Comments []hn.Item
}

type AscendedMsg struct {
	Parent   hn.Item
	Comments []hn.Item
}

type UserLoadedMsg struct {
	User hn.User
}

type PageSavedMsg struct {
	Item hn.Item
	Path string
}

// FetchErrorMsg reports any failed network command. Op names the command for
// the status line and the log.
type FetchErrorMsg struct {
	Op  string
	Err error
}

type HistoryLoadedMsg struct {
	Entries []storage.HistoryEntry
}

// LocalErrorMsg reports a failed command that never touched the network.
type LocalErrorMsg struct {
	Op  string
	Err error
}

type OpenURLSuccessMsg struct {
	Status string
	URL    string
	Opened bool
}

type OpenURLErrorMsg struct {
	Err error
}

func withTimeout(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

func LoadStoriesCmd(service Service, category hn.Category, pageSize int, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()
		start := time.Now()

		stories, err := service.LoadStories(ctx, category, 0, pageSize)
		if err != nil {
			return FetchErrorMsg{Op: string(category), Err: err}
		}
		return StoriesLoadedMsg{Stories: stories, Duration: time.Since(start)}
	}
}

func LoadStoryPageCmd(service Service, category hn.Category, ids hn.IDList, page, pageSize int, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()

		items, err := service.LoadStoryPage(ctx, ids, page, pageSize)
		if err != nil {
			return FetchErrorMsg{Op: "page", Err: err}
		}
		return StoryPageLoadedMsg{Category: category, Page: page, Items: items}
	}
}

func OpenItemCmd(service Service, id int64, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()

		item, comments, err := service.OpenItem(ctx, id)
		if err != nil {
			return FetchErrorMsg{Op: "comments", Err: err}
		}
		return ItemOpenedMsg{Item: item, Comments: comments}
	}
}

func ExpandCommentCmd(service Service, index int, comment hn.Item, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()

		parent, comments, err := service.ExpandComment(ctx, comment)
		if err != nil {
			return FetchErrorMsg{Op: "expand", Err: err}
		}
		return CommentExpandedMsg{Index: index, Parent: parent, Comments: comments}
	}
}

func AscendCmd(service Service, parent hn.Item, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()

		fresh, comments, err := service.ExpandComment(ctx, parent)
		if err != nil {
			return FetchErrorMsg{Op: "up", Err: err}
		}
		return AscendedMsg{Parent: fresh, Comments: comments}
	}
}

func FetchUserCmd(service Service, name string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()

		user, err := service.FetchUser(ctx, name)
		if err != nil {
			return FetchErrorMsg{Op: "user", Err: err}
		}
		return UserLoadedMsg{User: user}
	}
}

func DownloadPageCmd(service Service, item hn.Item, dir string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()

		path, err := service.DownloadPage(ctx, item, dir)
		if err != nil {
			return FetchErrorMsg{Op: "load", Err: err}
		}
		return PageSavedMsg{Item: item, Path: path}
	}
}

func HistoryCmd(service Service, limit int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(5 * time.Second)
		defer cancel()

		entries, err := service.History(ctx, limit)
		if err != nil {
			return LocalErrorMsg{Op: "history", Err: err}
		}
		return HistoryLoadedMsg{Entries: entries}
	}
}

func OpenURLCmd(url string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Opened URL in browser", URL: url, Opened: true}
			}
		}
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Could not open browser, URL copied to clipboard", URL: url}
			}
		}
		return OpenURLErrorMsg{Err: errors.New("could not open URL or copy to clipboard")}
	}
}

func CopyURLCmd(url string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "URL copied to clipboard", URL: url}
			}
		}
		return OpenURLErrorMsg{Err: errors.New("could not copy URL to clipboard")}
	}
}
