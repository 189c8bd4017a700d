package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/glabrego/hackernews-cli/internal/hn"
	"github.com/glabrego/hackernews-cli/internal/storage"
)

type fakeClient struct {
	stories   hn.IDList
	items     map[int64]hn.Item
	page      []byte
	err       error
	itemCalls [][]int64
	pageURL   string
}

func (f *fakeClient) Stories(context.Context, hn.Category) (hn.IDList, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stories, nil
}

func (f *fakeClient) Item(_ context.Context, id int64) (hn.Item, error) {
	if f.err != nil {
		return hn.Item{}, f.err
	}
	item, ok := f.items[id]
	if !ok {
		return hn.Item{}, errors.New("not found")
	}
	return item, nil
}

func (f *fakeClient) Items(ctx context.Context, ids []int64) ([]hn.Item, error) {
	f.itemCalls = append(f.itemCalls, append([]int64(nil), ids...))
	out := make([]hn.Item, 0, len(ids))
	for _, id := range ids {
		item, err := f.Item(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeClient) User(_ context.Context, id string) (hn.User, error) {
	if f.err != nil {
		return hn.User{}, f.err
	}
	return hn.User{ID: id, Karma: 42}, nil
}

func (f *fakeClient) Page(_ context.Context, rawURL string) ([]byte, error) {
	f.pageURL = rawURL
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

type fakeRepo struct {
	memo    map[int64]hn.Item
	opened  []int64
	resets  int
	saveErr error
	history []storage.HistoryEntry
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{memo: make(map[int64]hn.Item)}
}

func (f *fakeRepo) SaveItems(_ context.Context, items []hn.Item) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	for _, item := range items {
		f.memo[item.ID] = item
	}
	return nil
}

func (f *fakeRepo) LoadItems(_ context.Context, ids []int64) (map[int64]hn.Item, error) {
	out := make(map[int64]hn.Item)
	for _, id := range ids {
		if item, ok := f.memo[id]; ok {
			out[id] = item
		}
	}
	return out, nil
}

func (f *fakeRepo) ResetItems(context.Context) error {
	f.resets++
	f.memo = make(map[int64]hn.Item)
	return nil
}

func (f *fakeRepo) RecordOpen(_ context.Context, item hn.Item) error {
	f.opened = append(f.opened, item.ID)
	return nil
}

func (f *fakeRepo) ListHistory(context.Context, int) ([]storage.HistoryEntry, error) {
	return f.history, nil
}

func ptr[T any](v T) *T { return &v }

func storyItem(id int64, kids ...int64) hn.Item {
	return hn.Item{ID: id, By: "pg", Type: "story", Title: ptr("story"), Kids: kids}
}

func commentItem(id, parent int64, kids ...int64) hn.Item {
	return hn.Item{ID: id, By: "dang", Type: "comment", Parent: ptr(parent), Kids: kids}
}

func TestService_LoadStories_FetchesRankingAndPage(t *testing.T) {
	client := &fakeClient{
		stories: hn.IDList{5, 4, 3, 2, 1},
		items: map[int64]hn.Item{
			1: storyItem(1), 2: storyItem(2), 3: storyItem(3), 4: storyItem(4), 5: storyItem(5),
		},
	}
	repo := newFakeRepo()
	svc := NewService(client, repo)

	stories, err := svc.LoadStories(context.Background(), hn.CategoryTop, 1, 2)
	if err != nil {
		t.Fatalf("LoadStories returned error: %v", err)
	}
	if len(stories.IDs) != 5 || stories.Page != 1 {
		t.Fatalf("unexpected stories: %+v", stories)
	}
	if len(stories.Items) != 2 || stories.Items[0].ID != 3 || stories.Items[1].ID != 2 {
		t.Fatalf("unexpected page items: %+v", stories.Items)
	}
	if repo.resets != 1 {
		t.Fatalf("expected memo reset once, got %d", repo.resets)
	}
}

func TestService_LoadStoryPage_ServesMemoFirst(t *testing.T) {
	client := &fakeClient{items: map[int64]hn.Item{1: storyItem(1), 2: storyItem(2), 3: storyItem(3)}}
	repo := newFakeRepo()
	repo.memo[2] = storyItem(2)
	svc := NewService(client, repo)

	items, err := svc.LoadStoryPage(context.Background(), hn.IDList{1, 2, 3}, 0, 10)
	if err != nil {
		t.Fatalf("LoadStoryPage returned error: %v", err)
	}
	if len(items) != 3 || items[0].ID != 1 || items[1].ID != 2 || items[2].ID != 3 {
		t.Fatalf("unexpected order: %+v", items)
	}
	if len(client.itemCalls) != 1 || len(client.itemCalls[0]) != 2 {
		t.Fatalf("expected only misses fetched, got %v", client.itemCalls)
	}

	if _, err := svc.LoadStoryPage(context.Background(), hn.IDList{1, 2, 3}, 0, 10); err != nil {
		t.Fatal(err)
	}
	if len(client.itemCalls) != 1 {
		t.Fatalf("second load should be served from memo, got %v", client.itemCalls)
	}
}

func TestService_LoadStoryPage_PastEnd(t *testing.T) {
	svc := NewService(&fakeClient{}, newFakeRepo())
	items, err := svc.LoadStoryPage(context.Background(), hn.IDList{1, 2}, 3, 10)
	if err != nil || items != nil {
		t.Fatalf("expected empty page, got %v, %v", items, err)
	}
}

func TestService_LoadStories_PropagatesFetchError(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(&fakeClient{err: errors.New("boom")}, repo)

	if _, err := svc.LoadStories(context.Background(), hn.CategoryNew, 0, 10); err == nil {
		t.Fatal("expected error")
	}
	if repo.resets != 0 {
		t.Fatal("failed fetch must not reset the memo")
	}
}

func TestService_OpenItem_FiltersDeadAndDeleted(t *testing.T) {
	dead := commentItem(11, 1)
	dead.Dead = ptr(true)
	deleted := commentItem(12, 1)
	deleted.Deleted = ptr(true)
	client := &fakeClient{items: map[int64]hn.Item{
		1:  storyItem(1, 10, 11, 12, 13),
		10: commentItem(10, 1),
		11: dead,
		12: deleted,
		13: commentItem(13, 1, 20),
	}}
	repo := newFakeRepo()
	svc := NewService(client, repo)

	item, comments, err := svc.OpenItem(context.Background(), 1)
	if err != nil {
		t.Fatalf("OpenItem returned error: %v", err)
	}
	if item.ID != 1 {
		t.Fatalf("unexpected item %d", item.ID)
	}
	if len(comments) != 2 || comments[0].ID != 10 || comments[1].ID != 13 {
		t.Fatalf("unexpected comments: %+v", comments)
	}
	if len(repo.opened) != 1 || repo.opened[0] != 1 {
		t.Fatalf("expected open recorded, got %v", repo.opened)
	}
}

func TestService_OpenItem_NoKids(t *testing.T) {
	client := &fakeClient{items: map[int64]hn.Item{1: storyItem(1)}}
	svc := NewService(client, newFakeRepo())

	_, comments, err := svc.OpenItem(context.Background(), 1)
	if err != nil {
		t.Fatalf("OpenItem returned error: %v", err)
	}
	if len(comments) != 0 || len(client.itemCalls) != 0 {
		t.Fatalf("expected no child fetch, got %v", client.itemCalls)
	}
}

func TestService_ExpandComment_UsesFreshKids(t *testing.T) {
	stale := commentItem(10, 1, 20)
	client := &fakeClient{items: map[int64]hn.Item{
		10: commentItem(10, 1, 20, 21),
		20: commentItem(20, 10),
		21: commentItem(21, 10),
	}}
	svc := NewService(client, newFakeRepo())

	parent, children, err := svc.ExpandComment(context.Background(), stale)
	if err != nil {
		t.Fatalf("ExpandComment returned error: %v", err)
	}
	if parent.KidCount() != 2 || len(children) != 2 {
		t.Fatalf("expected fresh kids, got parent=%d children=%d", parent.KidCount(), len(children))
	}
}

func TestService_FetchUser(t *testing.T) {
	svc := NewService(&fakeClient{}, newFakeRepo())
	user, err := svc.FetchUser(context.Background(), "pg")
	if err != nil {
		t.Fatalf("FetchUser returned error: %v", err)
	}
	if user.ID != "pg" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestService_DownloadPage_WritesFile(t *testing.T) {
	client := &fakeClient{page: []byte("<html>dropbox</html>")}
	svc := NewService(client, newFakeRepo())
	dir := t.TempDir()

	item := storyItem(8863)
	item.Title = ptr("My YC app: Dropbox")
	item.By = "dhouston"
	item.URL = ptr("https://www.getdropbox.com/u/2/screencast.html")

	path, err := svc.DownloadPage(context.Background(), item, dir)
	if err != nil {
		t.Fatalf("DownloadPage returned error: %v", err)
	}
	if path != filepath.Join(dir, "My YC app: Dropboxdhouston.html") {
		t.Fatalf("unexpected path: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read downloaded page: %v", err)
	}
	if string(data) != "<html>dropbox</html>" {
		t.Fatalf("unexpected contents: %s", data)
	}
	if client.pageURL != *item.URL {
		t.Fatalf("unexpected url fetched: %s", client.pageURL)
	}
}

func TestService_DownloadPage_RequiresURL(t *testing.T) {
	svc := NewService(&fakeClient{}, newFakeRepo())
	if _, err := svc.DownloadPage(context.Background(), storyItem(1), t.TempDir()); err == nil {
		t.Fatal("expected error for item without url")
	}
}

func TestSavedPageFilename(t *testing.T) {
	cases := []struct {
		name string
		item hn.Item
		want string
	}{
		{
			name: "titled",
			item: hn.Item{By: "pg", Title: ptr("Hello")},
			want: "Hellopg.html",
		},
		{
			name: "title with slash",
			item: hn.Item{By: "pg", Title: ptr("TCP/IP")},
			want: "TCP_IPpg.html",
		},
		{
			name: "untitled uses url path",
			item: hn.Item{By: "pg", URL: ptr("http://www.getdropbox.com/u/2/screencast.html")},
			want: "_u_2_screencast.html.html",
		},
	}
	for _, tc := range cases {
		if got := SavedPageFilename(tc.item); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestService_LoadStoryPage_PropagatesSaveError(t *testing.T) {
	client := &fakeClient{items: map[int64]hn.Item{1: storyItem(1)}}
	repo := newFakeRepo()
	repo.saveErr = errors.New("disk full")
	svc := NewService(client, repo)

	if _, err := svc.LoadStoryPage(context.Background(), hn.IDList{1}, 0, 10); err == nil {
		t.Fatal("expected save error")
	}
}
