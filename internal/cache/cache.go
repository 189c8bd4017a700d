// Package cache holds the most recently fetched result sets: one ranking per
// category, the headline page on screen, the open item with its child
// comments, and the ancestors traversed while expanding comments.
//
// A Cache has a single owner and is not safe for concurrent use. No method
// performs I/O.
package cache

import (
	"errors"
	"fmt"

	"github.com/glabrego/hackernews-cli/internal/hn"
)

// ErrCacheMiss is returned when an operation needs a slot that is empty.
var ErrCacheMiss = errors.New("nothing cached")

// StoryPage is the headline page currently displayed.
type StoryPage struct {
	Category hn.Category
	Page     int
	Items    []hn.Item
}

type Cache struct {
	stories   map[hn.Category]hn.IDList
	storyPage *StoryPage

	openItem  *hn.Item
	comments  []hn.Item
	ancestors []hn.Item

	user *hn.User
}

func New() *Cache {
	return &Cache{stories: make(map[hn.Category]hn.IDList)}
}

// StoreStoryList replaces the ranking for category.
func (c *Cache) StoreStoryList(category hn.Category, ids hn.IDList) {
	c.stories[category] = append(hn.IDList(nil), ids...)
}

func (c *Cache) StoryList(category hn.Category) (hn.IDList, bool) {
	ids, ok := c.stories[category]
	if !ok {
		return nil, false
	}
	return append(hn.IDList(nil), ids...), true
}

func (c *Cache) StoryCount(category hn.Category) (int, bool) {
	ids, ok := c.stories[category]
	if !ok {
		return 0, false
	}
	return len(ids), true
}

func (c *Cache) StoreStoryPage(category hn.Category, page int, items []hn.Item) {
	c.storyPage = &StoryPage{
		Category: category,
		Page:     page,
		Items:    append([]hn.Item(nil), items...),
	}
}

func (c *Cache) StoryPage() (StoryPage, bool) {
	if c.storyPage == nil {
		return StoryPage{}, false
	}
	p := *c.storyPage
	p.Items = append([]hn.Item(nil), p.Items...)
	return p, true
}

// StoreOpenItemAndComments opens item from a story list. The ancestor stack
// belongs to the previous thread and is cleared.
func (c *Cache) StoreOpenItemAndComments(item hn.Item, comments []hn.Item) {
	c.ancestors = nil
	c.replaceOpen(item, comments)
}

// DescendInto opens item as an expansion of the current open item, which is
// pushed onto the ancestor stack.
func (c *Cache) DescendInto(item hn.Item, comments []hn.Item) {
	if c.openItem != nil {
		c.ancestors = append(c.ancestors, *c.openItem)
	}
	c.replaceOpen(item, comments)
}

// PeekAncestor returns the innermost ancestor without removing it.
func (c *Cache) PeekAncestor() (hn.Item, bool) {
	if len(c.ancestors) == 0 {
		return hn.Item{}, false
	}
	return c.ancestors[len(c.ancestors)-1], true
}

// Ascend pops the innermost ancestor and reopens it with freshly fetched
// comments. parent must be that ancestor; otherwise nothing changes.
func (c *Cache) Ascend(parent hn.Item, comments []hn.Item) error {
	top, ok := c.PeekAncestor()
	if !ok {
		return fmt.Errorf("ascend: no ancestor: %w", ErrCacheMiss)
	}
	if top.ID != parent.ID {
		return fmt.Errorf("ascend: ancestor is %d, got %d: %w", top.ID, parent.ID, ErrCacheMiss)
	}
	c.ancestors = c.ancestors[:len(c.ancestors)-1]
	c.replaceOpen(parent, comments)
	return nil
}

func (c *Cache) replaceOpen(item hn.Item, comments []hn.Item) {
	open := item
	c.openItem = &open
	c.comments = append(make([]hn.Item, 0, len(comments)), comments...)
}

// TakeComment removes and returns the comment at index. It reports false when
// no comments are cached or index is out of range.
func (c *Cache) TakeComment(index int) (hn.Item, bool) {
	if c.openItem == nil || index < 0 || index >= len(c.comments) {
		return hn.Item{}, false
	}
	comment := c.comments[index]
	c.comments = append(c.comments[:index], c.comments[index+1:]...)
	return comment, true
}

// TakeCommentWithChildren is TakeComment restricted to comments that have at
// least one child. Leaf comments stay cached.
func (c *Cache) TakeCommentWithChildren(index int) (hn.Item, bool) {
	if c.openItem == nil || index < 0 || index >= len(c.comments) {
		return hn.Item{}, false
	}
	if !c.comments[index].HasKids() {
		return hn.Item{}, false
	}
	return c.TakeComment(index)
}

// CommentAt returns the comment at index without consuming it.
func (c *Cache) CommentAt(index int) (hn.Item, bool) {
	if c.openItem == nil || index < 0 || index >= len(c.comments) {
		return hn.Item{}, false
	}
	return c.comments[index], true
}

func (c *Cache) CommentCount() (int, bool) {
	if c.openItem == nil {
		return 0, false
	}
	return len(c.comments), true
}

func (c *Cache) Comments() []hn.Item {
	return append([]hn.Item(nil), c.comments...)
}

func (c *Cache) OpenItem() (hn.Item, bool) {
	if c.openItem == nil {
		return hn.Item{}, false
	}
	return *c.openItem, true
}

// Ancestors returns the stack from the thread root to the innermost parent.
func (c *Cache) Ancestors() []hn.Item {
	return append([]hn.Item(nil), c.ancestors...)
}

func (c *Cache) Depth() int {
	return len(c.ancestors)
}

// Frame returns the open item, its comments and the expansion depth.
func (c *Cache) Frame() (hn.CommentFrame, bool) {
	if c.openItem == nil {
		return hn.CommentFrame{}, false
	}
	return hn.CommentFrame{
		Parent:   *c.openItem,
		Comments: c.Comments(),
		Depth:    len(c.ancestors),
	}, true
}

func (c *Cache) StoreUser(u hn.User) {
	c.user = &u
}

func (c *Cache) User() (hn.User, bool) {
	if c.user == nil {
		return hn.User{}, false
	}
	return *c.user, true
}
