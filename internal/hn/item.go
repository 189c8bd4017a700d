// Package hn models the Hacker News content API: items, rankings and users,
// plus the codec and the HTTP client that fetches them.
package hn

import (
	"bytes"
	"encoding/json"
	"time"
)

// UndefinedUser is the author recorded for items whose payload has no "by".
const UndefinedUser = "Undefined user"

// Item is a node in the content tree: story, comment, job, poll or pollopt.
// Optional fields are nil when absent from the payload.
type Item struct {
	By          string  `json:"by"`
	Parent      *int64  `json:"parent,omitempty"`
	Descendants *int    `json:"descendants,omitempty"`
	ID          int64   `json:"id"`
	Kids        []int64 `json:"kids,omitempty"`
	Title       *string `json:"title,omitempty"`
	Score       *int    `json:"score,omitempty"`
	Text        *string `json:"text,omitempty"`
	Time        int64   `json:"time"`
	Type        string  `json:"type"`
	URL         *string `json:"url,omitempty"`
	Dead        *bool   `json:"dead,omitempty"`
	Deleted     *bool   `json:"deleted,omitempty"`
}

// UnmarshalJSON fills By with UndefinedUser when the payload omits it.
func (i *Item) UnmarshalJSON(data []byte) error {
	type wireItem Item
	w := wireItem{By: UndefinedUser}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.By == "" {
		w.By = UndefinedUser
	}
	*i = Item(w)
	return nil
}

func (i Item) HasKids() bool {
	return len(i.Kids) > 0
}

func (i Item) KidCount() int {
	return len(i.Kids)
}

func (i Item) IsDead() bool {
	return i.Dead != nil && *i.Dead
}

func (i Item) IsDeleted() bool {
	return i.Deleted != nil && *i.Deleted
}

// IsStory reports whether the item is a top-level headline (it has a title
// and no parent).
func (i Item) IsStory() bool {
	return i.Title != nil && i.Parent == nil
}

func (i Item) TitleOr(fallback string) string {
	if i.Title == nil {
		return fallback
	}
	return *i.Title
}

func (i Item) URLOr(fallback string) string {
	if i.URL == nil {
		return fallback
	}
	return *i.URL
}

func (i Item) TextOr(fallback string) string {
	if i.Text == nil {
		return fallback
	}
	return *i.Text
}

func (i Item) ScoreOr(fallback int) int {
	if i.Score == nil {
		return fallback
	}
	return *i.Score
}

func (i Item) Created() time.Time {
	return time.Unix(i.Time, 0).UTC()
}

// JSON encodes the item with absent fields omitted.
func (i Item) JSON() (string, error) {
	b, err := json.Marshal(i)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (i Item) PrettyJSON() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(i); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// IDList is a ranking. Order is rank.
type IDList []int64

// Page returns the IDs of the zero-based page, or nil past the end.
func (l IDList) Page(page, pageSize int) IDList {
	if page < 0 || pageSize <= 0 {
		return nil
	}
	start := page * pageSize
	if start >= len(l) {
		return nil
	}
	end := start + pageSize
	if end > len(l) {
		end = len(l)
	}
	out := make(IDList, end-start)
	copy(out, l[start:end])
	return out
}

// User is a public profile.
type User struct {
	ID        string  `json:"id"`
	About     string  `json:"about,omitempty"`
	Created   int64   `json:"created"`
	Karma     int     `json:"karma"`
	Submitted []int64 `json:"submitted,omitempty"`
}

func (u User) CreatedAt() time.Time {
	return time.Unix(u.Created, 0).UTC()
}

// CommentFrame is one level of an expanded thread: the parent and its
// direct children. Depth counts the expansions above the frame.
type CommentFrame struct {
	Parent   Item
	Comments []Item
	Depth    int
}
