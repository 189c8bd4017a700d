package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"

	"github.com/glabrego/hackernews-cli/internal/hn"
)

var memoryDBSeq atomic.Int64

// HistoryEntry is one item opened during the session.
type HistoryEntry struct {
	ItemID   int64
	Title    string
	OpenedAt time.Time
}

type Repository struct {
	db *sql.DB
}

// NewRepository opens a private in-memory database that lives as long as the
// Repository. Every call gets its own database.
func NewRepository() (*Repository, error) {
	dsn := fmt.Sprintf("file:hn-%d?mode=memory&cache=shared", memoryDBSeq.Add(1))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// The database disappears when its last connection closes.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS items (
  id INTEGER PRIMARY KEY,
  payload TEXT NOT NULL,
  fetched_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS history (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  item_id INTEGER NOT NULL,
  title TEXT NOT NULL,
  opened_at TEXT NOT NULL
);
`
	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (r *Repository) SaveItems(ctx context.Context, items []hn.Item) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO items (id, payload, fetched_at)
VALUES (?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  payload=excluded.payload,
  fetched_at=excluded.fetched_at
`)
	if err != nil {
		return fmt.Errorf("prepare save statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, item := range items {
		payload, err := item.JSON()
		if err != nil {
			return fmt.Errorf("encode item %d: %w", item.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, item.ID, payload, now); err != nil {
			return fmt.Errorf("save item %d: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// LoadItems returns the memoised items among ids, keyed by id. Missing ids are
// simply absent from the map.
func (r *Repository) LoadItems(ctx context.Context, ids []int64) (map[int64]hn.Item, error) {
	found := make(map[int64]hn.Item, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, `SELECT id, payload FROM items WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		item, err := hn.DecodeItem([]byte(payload))
		if err != nil {
			return nil, fmt.Errorf("decode cached item %d: %w", id, err)
		}
		found[id] = item
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return found, nil
}

func (r *Repository) ResetItems(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("reset items: %w", err)
	}
	return nil
}

func (r *Repository) RecordOpen(ctx context.Context, item hn.Item) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO history (item_id, title, opened_at)
VALUES (?, ?, ?)
`, item.ID, item.TitleOr("by "+item.By), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("record open %d: %w", item.ID, err)
	}
	return nil
}

// ListHistory returns the most recently opened items first.
func (r *Repository) ListHistory(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if limit < 1 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT item_id, title, opened_at
FROM history
ORDER BY seq DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	entries := make([]HistoryEntry, 0, limit)
	for rows.Next() {
		var entry HistoryEntry
		var openedAt string
		if err := rows.Scan(&entry.ItemID, &entry.Title, &openedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		entry.OpenedAt, err = time.Parse(time.RFC3339Nano, openedAt)
		if err != nil {
			return nil, fmt.Errorf("parse history opened_at %q: %w", openedAt, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return entries, nil
}
