package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	tuiactions "github.com/glabrego/hackernews-cli/internal/tui/actions"

	"github.com/glabrego/hackernews-cli/internal/app"
	"github.com/glabrego/hackernews-cli/internal/hn"
	"github.com/glabrego/hackernews-cli/internal/nav"
	"github.com/glabrego/hackernews-cli/internal/storage"
	"github.com/glabrego/hackernews-cli/internal/transport"
)

func TestModelUpdate_HandlesAllActionMessageTypes(t *testing.T) {
	svc := newFakeService()
	story := svc.items[1]
	reply := svc.items[100]
	nested := svc.items[200]

	fetching := func(m *Model) {
		if err := m.nav.BeginFetch(); err != nil {
			t.Fatalf("begin fetch: %v", err)
		}
	}
	working := func(m *Model) {
		if err := m.nav.BeginLocalWork(); err != nil {
			t.Fatalf("begin local work: %v", err)
		}
	}

	tests := []struct {
		name    string
		prepare func(*Model)
		msg     tea.Msg
		state   nav.State
		wantErr bool
	}{
		{
			name:    "stories loaded",
			prepare: fetching,
			msg: tuiactions.StoriesLoadedMsg{
				Stories:  app.Stories{Category: hn.CategoryBest, IDs: svc.ids, Items: []hn.Item{story}},
				Duration: 120 * time.Millisecond,
			},
			state: nav.WaitingUserInput,
		},
		{
			name:    "story page loaded",
			prepare: fetching,
			msg:     tuiactions.StoryPageLoadedMsg{Category: hn.CategoryNew, Page: 1, Items: []hn.Item{story}},
			state:   nav.WaitingUserInput,
		},
		{
			name:    "item opened",
			prepare: fetching,
			msg:     tuiactions.ItemOpenedMsg{Item: story, Comments: []hn.Item{reply}},
			state:   nav.WaitingUserInput,
		},
		{
			name: "comment expanded",
			prepare: func(m *Model) {
				m.cache.StoreOpenItemAndComments(story, []hn.Item{reply})
				fetching(m)
			},
			msg:   tuiactions.CommentExpandedMsg{Index: 0, Parent: reply, Comments: []hn.Item{nested}},
			state: nav.WaitingUserInput,
		},
		{
			name: "comment expanded for a vanished comment",
			prepare: func(m *Model) {
				m.cache.StoreOpenItemAndComments(story, nil)
				fetching(m)
			},
			msg:     tuiactions.CommentExpandedMsg{Index: 0, Parent: reply},
			state:   nav.WaitingUserInput,
			wantErr: true,
		},
		{
			name: "ascended",
			prepare: func(m *Model) {
				m.cache.StoreOpenItemAndComments(story, nil)
				m.cache.DescendInto(reply, []hn.Item{nested})
				fetching(m)
			},
			msg:   tuiactions.AscendedMsg{Parent: story, Comments: []hn.Item{reply}},
			state: nav.WaitingUserInput,
		},
		{
			name:    "ascended without ancestor",
			prepare: fetching,
			msg:     tuiactions.AscendedMsg{Parent: story},
			state:   nav.WaitingUserInput,
			wantErr: true,
		},
		{
			name:    "user loaded",
			prepare: fetching,
			msg:     tuiactions.UserLoadedMsg{User: hn.User{ID: "pg"}},
			state:   nav.WaitingUserInput,
		},
		{
			name:    "page saved",
			prepare: fetching,
			msg:     tuiactions.PageSavedMsg{Item: story, Path: "/tmp/x.html"},
			state:   nav.WaitingUserInput,
		},
		{
			name:    "fetch error",
			prepare: fetching,
			msg:     tuiactions.FetchErrorMsg{Op: "top", Err: errors.New("boom")},
			state:   nav.WaitingUserInput,
			wantErr: true,
		},
		{
			name:    "history loaded",
			prepare: working,
			msg:     tuiactions.HistoryLoadedMsg{Entries: []storage.HistoryEntry{{ItemID: 1, Title: "Story 1"}}},
			state:   nav.WaitingUserInput,
		},
		{
			name:    "local error",
			prepare: working,
			msg:     tuiactions.LocalErrorMsg{Op: "history", Err: errors.New("db closed")},
			state:   nav.Idle,
			wantErr: true,
		},
		{
			name:    "open url success",
			prepare: working,
			msg:     tuiactions.OpenURLSuccessMsg{Status: "Opened URL in browser", URL: "https://example.com", Opened: true},
			state:   nav.WaitingUserInput,
		},
		{
			name:    "open url error",
			prepare: working,
			msg:     tuiactions.OpenURLErrorMsg{Err: errors.New("no browser")},
			state:   nav.Idle,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(newFakeService(), &urlRecorder{})
			tc.prepare(&m)

			updated, _ := m.Update(tc.msg)
			got := updated.(Model)
			if got.nav.State() != tc.state {
				t.Fatalf("expected state %s, got %s", tc.state, got.nav.State())
			}
			if got.nav.ConnectionWorking() {
				t.Fatal("connection should be idle after a result")
			}
			if (got.err != nil) != tc.wantErr {
				t.Fatalf("unexpected error state: %v", got.err)
			}
			_ = got.View()
		})
	}
}

func TestModelUpdate_IgnoresResultsOutsideRetrieval(t *testing.T) {
	m := newTestModel(newFakeService(), &urlRecorder{})
	updated, _ := m.Update(tuiactions.StoriesLoadedMsg{Stories: app.Stories{Category: hn.CategoryTop, IDs: hn.IDList{1}}})
	got := updated.(Model)
	if got.nav.ViewingTopStories() {
		t.Fatal("a result without an outstanding fetch must not change the view")
	}
	if _, ok := got.cache.StoryList(hn.CategoryTop); ok {
		t.Fatal("a result without an outstanding fetch must not reach the cache")
	}
}

func TestDescribeError(t *testing.T) {
	cases := []struct {
		op   string
		err  error
		want string
	}{
		{"load", fmt.Errorf("fetch page: %w", &transport.Error{Kind: transport.KindUnsupportedScheme, URI: "http://x"}), "load: only https links can be fetched"},
		{"top", &transport.Error{Kind: transport.KindConnect}, "top: connection failed"},
		{"top", &transport.Error{Kind: transport.KindStatus}, "top: unexpected status"},
		{"comments", fmt.Errorf("fetch item: %w", context.DeadlineExceeded), "comments: timed out"},
		{"expand", &hn.DecodeError{Resource: "item", Err: errors.New("null")}, "expand: could not decode response"},
		{"page", nav.ErrPastIndex, "page: tried to navigate past the index"},
		{"load", fmt.Errorf("fetch page: %w", hn.ErrBodyTooLarge), "load: response too large"},
		{"user", errors.New("boom"), "user: boom"},
	}
	for _, tc := range cases {
		if got := describeError(tc.op, tc.err); got != tc.want {
			t.Fatalf("describeError(%q, %v) = %q, want %q", tc.op, tc.err, got, tc.want)
		}
	}
}

func TestModelView_ShowsStateAndPrompt(t *testing.T) {
	m := newTestModel(newFakeService(), &urlRecorder{})
	view := stripANSI(m.View())
	for _, want := range []string{"Hacker News", "state: waiting", "hn> "} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}
