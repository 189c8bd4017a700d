package hn

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/glabrego/hackernews-cli/internal/transport"
)

const DefaultBaseURL = "https://hacker-news.firebaseio.com/v0"

// maxBodyBytes bounds a single API response; the largest rankings are a few
// kilobytes.
const maxBodyBytes = 4 << 20

// ErrBodyTooLarge is returned instead of a truncated body.
var ErrBodyTooLarge = errors.New("response body too large")

// Category names a ranking exposed by the API.
type Category string

const (
	CategoryTop  Category = "top"
	CategoryBest Category = "best"
	CategoryNew  Category = "new"
)

func (c Category) path() string {
	return "/" + string(c) + "stories.json"
}

func (c Category) Valid() bool {
	switch c {
	case CategoryTop, CategoryBest, CategoryNew:
		return true
	}
	return false
}

// Client issues GET requests against the content API.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient builds a client. A nil limiter disables throttling; a nil
// httpClient gets a TLS-only client from the transport package.
func NewClient(baseURL string, httpClient *http.Client, limiter *rate.Limiter) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = transport.NewHTTPClient(transport.NewConnector(nil, nil), 0)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		limiter: limiter,
	}
}

// Fetch performs one GET for path and returns the raw body.
func (c *Client) Fetch(ctx context.Context, path string) ([]byte, error) {
	return c.FetchURL(ctx, c.baseURL+path)
}

// FetchURL is Fetch for an absolute URL.
func (c *Client) FetchURL(ctx context.Context, rawURL string) ([]byte, error) {
	return c.get(ctx, rawURL, "application/json")
}

// Page downloads an arbitrary web page through the same TLS-only transport.
func (c *Client) Page(ctx context.Context, rawURL string) ([]byte, error) {
	body, err := c.get(ctx, rawURL, "text/html,*/*")
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, rawURL, accept string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("wait for rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", accept)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, asTransportError(rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &transport.Error{
			Kind: transport.KindStatus,
			URI:  rawURL,
			Err:  fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, &transport.Error{Kind: transport.KindConnect, URI: rawURL, Err: err}
	}
	if len(body) > maxBodyBytes {
		return nil, fmt.Errorf("read %s: over %d bytes: %w", rawURL, maxBodyBytes, ErrBodyTooLarge)
	}
	return body, nil
}

func (c *Client) Stories(ctx context.Context, category Category) (IDList, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("unknown story category %q", category)
	}
	body, err := c.Fetch(ctx, category.path())
	if err != nil {
		return nil, fmt.Errorf("fetch %s stories: %w", category, err)
	}
	return DecodeIDList(body)
}

func (c *Client) Item(ctx context.Context, id int64) (Item, error) {
	body, err := c.Fetch(ctx, fmt.Sprintf("/item/%d.json", id))
	if err != nil {
		return Item{}, fmt.Errorf("fetch item %d: %w", id, err)
	}
	return DecodeItem(body)
}

func (c *Client) User(ctx context.Context, id string) (User, error) {
	body, err := c.Fetch(ctx, "/user/"+url.PathEscape(id)+".json")
	if err != nil {
		return User{}, fmt.Errorf("fetch user %s: %w", id, err)
	}
	return DecodeUser(body)
}

// Items fetches ids concurrently and returns them in the order given. The
// first failure cancels the remaining requests.
func (c *Client) Items(ctx context.Context, ids []int64) ([]Item, error) {
	items := make([]Item, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			item, err := c.Item(gctx, id)
			if err != nil {
				return err
			}
			items[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

func asTransportError(rawURL string, err error) error {
	var te *transport.Error
	if errors.As(err, &te) {
		return err
	}
	return &transport.Error{Kind: transport.KindConnect, URI: rawURL, Err: err}
}
