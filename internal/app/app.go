package app

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/glabrego/hackernews-cli/internal/hn"
	"github.com/glabrego/hackernews-cli/internal/storage"
)

type HNClient interface {
	Stories(ctx context.Context, category hn.Category) (hn.IDList, error)
	Item(ctx context.Context, id int64) (hn.Item, error)
	Items(ctx context.Context, ids []int64) ([]hn.Item, error)
	User(ctx context.Context, id string) (hn.User, error)
	Page(ctx context.Context, rawURL string) ([]byte, error)
}

type Repository interface {
	SaveItems(ctx context.Context, items []hn.Item) error
	LoadItems(ctx context.Context, ids []int64) (map[int64]hn.Item, error)
	ResetItems(ctx context.Context) error
	RecordOpen(ctx context.Context, item hn.Item) error
	ListHistory(ctx context.Context, limit int) ([]storage.HistoryEntry, error)
}

// Stories is one ranking together with the headlines of the requested page.
type Stories struct {
	Category hn.Category
	IDs      hn.IDList
	Page     int
	Items    []hn.Item
}

type Service struct {
	client HNClient
	repo   Repository
}

func NewService(client HNClient, repo Repository) *Service {
	return &Service{client: client, repo: repo}
}

// LoadStories fetches a fresh ranking for category and the headlines of page.
// The item memo is reset first so headlines are never older than the ranking.
func (s *Service) LoadStories(ctx context.Context, category hn.Category, page, pageSize int) (Stories, error) {
	ids, err := s.client.Stories(ctx, category)
	if err != nil {
		return Stories{}, fmt.Errorf("fetch %s stories from hacker news: %w", category, err)
	}
	if err := s.repo.ResetItems(ctx); err != nil {
		return Stories{}, fmt.Errorf("reset item cache: %w", err)
	}

	items, err := s.LoadStoryPage(ctx, ids, page, pageSize)
	if err != nil {
		return Stories{}, err
	}
	return Stories{Category: category, IDs: ids, Page: page, Items: items}, nil
}

// LoadStoryPage returns the headlines for one page of ids. Memoised items are
// served locally and only misses go to the network.
func (s *Service) LoadStoryPage(ctx context.Context, ids hn.IDList, page, pageSize int) ([]hn.Item, error) {
	pageIDs := ids.Page(page, pageSize)
	if len(pageIDs) == 0 {
		return nil, nil
	}

	cached, err := s.repo.LoadItems(ctx, pageIDs)
	if err != nil {
		return nil, fmt.Errorf("load items from cache: %w", err)
	}

	missing := make([]int64, 0, len(pageIDs))
	for _, id := range pageIDs {
		if _, ok := cached[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		fetched, err := s.client.Items(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("fetch stories from hacker news: %w", err)
		}
		if err := s.repo.SaveItems(ctx, fetched); err != nil {
			return nil, fmt.Errorf("save items to cache: %w", err)
		}
		for _, item := range fetched {
			cached[item.ID] = item
		}
	}

	items := make([]hn.Item, 0, len(pageIDs))
	for _, id := range pageIDs {
		items = append(items, cached[id])
	}
	return items, nil
}

// OpenItem fetches id and its live child comments and records the visit.
func (s *Service) OpenItem(ctx context.Context, id int64) (hn.Item, []hn.Item, error) {
	item, err := s.client.Item(ctx, id)
	if err != nil {
		return hn.Item{}, nil, fmt.Errorf("fetch item %d from hacker news: %w", id, err)
	}
	comments, err := s.children(ctx, item)
	if err != nil {
		return hn.Item{}, nil, err
	}
	if err := s.repo.RecordOpen(ctx, item); err != nil {
		return hn.Item{}, nil, fmt.Errorf("record history: %w", err)
	}
	return item, comments, nil
}

// ExpandComment re-fetches comment so its child list is current, then loads
// those children.
func (s *Service) ExpandComment(ctx context.Context, comment hn.Item) (hn.Item, []hn.Item, error) {
	fresh, err := s.client.Item(ctx, comment.ID)
	if err != nil {
		return hn.Item{}, nil, fmt.Errorf("fetch comment %d from hacker news: %w", comment.ID, err)
	}
	children, err := s.children(ctx, fresh)
	if err != nil {
		return hn.Item{}, nil, err
	}
	return fresh, children, nil
}

func (s *Service) children(ctx context.Context, parent hn.Item) ([]hn.Item, error) {
	if !parent.HasKids() {
		return nil, nil
	}
	kids, err := s.client.Items(ctx, parent.Kids)
	if err != nil {
		return nil, fmt.Errorf("fetch comments of %d from hacker news: %w", parent.ID, err)
	}
	return liveOnly(kids), nil
}

func (s *Service) FetchUser(ctx context.Context, name string) (hn.User, error) {
	user, err := s.client.User(ctx, name)
	if err != nil {
		return hn.User{}, fmt.Errorf("fetch user %s from hacker news: %w", name, err)
	}
	return user, nil
}

func (s *Service) History(ctx context.Context, limit int) ([]storage.HistoryEntry, error) {
	entries, err := s.repo.ListHistory(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return entries, nil
}

// DownloadPage saves the page a story links to into dir and returns the path
// written.
func (s *Service) DownloadPage(ctx context.Context, item hn.Item, dir string) (string, error) {
	if item.URL == nil || *item.URL == "" {
		return "", fmt.Errorf("item %d has no link to download", item.ID)
	}
	body, err := s.client.Page(ctx, *item.URL)
	if err != nil {
		return "", fmt.Errorf("download item %d: %w", item.ID, err)
	}

	path := filepath.Join(dir, SavedPageFilename(item))
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// SavedPageFilename names the local copy of a story's page: title followed by
// author for titled items, otherwise the URL path with slashes flattened.
func SavedPageFilename(item hn.Item) string {
	if item.Title != nil {
		return flatten(*item.Title+item.By) + ".html"
	}
	path := ""
	if item.URL != nil {
		if u, err := url.Parse(*item.URL); err == nil {
			path = u.Path
		}
	}
	return flatten(path) + ".html"
}

func flatten(name string) string {
	return strings.NewReplacer("/", "_", "\\", "_", "\x00", "").Replace(name)
}

func liveOnly(items []hn.Item) []hn.Item {
	live := make([]hn.Item, 0, len(items))
	for _, item := range items {
		if item.IsDead() || item.IsDeleted() {
			continue
		}
		live = append(live, item)
	}
	return live
}
