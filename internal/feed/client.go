package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dghubble/sling"
	"github.com/mmcdole/gofeed"

	"github.com/se0sangh0/otaple/internal/config"
)

const (
	// UserAgent identifies the planner to feed endpoints.
	UserAgent = "otaple/1.0 (github.com/se0sangh0/otaple)"

	// primaryRetries bounds transient retries on the primary path before the
	// fallback takes over.
	primaryRetries = 2
)

// Client retrieves raw feed items for one RSS URL, primary path first.
type Client struct {
	http        *http.Client
	rss2jsonURL string
	proxyURL    string
	timeout     time.Duration
	maxItems    int
}

// NewClient creates a feed client from config.
func NewClient(cfg config.Feed) *Client {
	return &Client{
		http:        &http.Client{},
		rss2jsonURL: cfg.RSS2JSONEndpoint,
		proxyURL:    cfg.ProxyEndpoint,
		timeout:     time.Duration(cfg.TimeoutSeconds) * time.Second,
		maxItems:    cfg.MaxFeedItems,
	}
}

// Fetch tries the primary JSON conversion path and, only when it fails, the
// raw-XML proxy fallback. Both errors are reported when both paths fail.
func (c *Client) Fetch(ctx context.Context, rssURL string) ([]RawItem, error) {
	items, primaryErr := c.fetchPrimary(ctx, rssURL)
	if primaryErr == nil {
		return items, nil
	}

	items, fallbackErr := c.fetchFallback(ctx, rssURL)
	if fallbackErr == nil {
		return items, nil
	}
	return nil, fmt.Errorf("primary: %v; fallback: %w", primaryErr, fallbackErr)
}

// rss2json wire types.
type rss2jsonQuery struct {
	RSSURL string `url:"rss_url"`
}

type rss2jsonResponse struct {
	Status string `json:"status"`
	Feed   struct {
		Title string `json:"title"`
	} `json:"feed"`
	Items []rss2jsonItem `json:"items"`
}

type rss2jsonItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	PubDate     string `json:"pubDate"`
	Description string `json:"description"`
}

// fetchPrimary queries the RSS-to-JSON conversion API. Transient failures
// (network errors, 5xx) are retried with exponential backoff inside the
// path's timeout; malformed responses and 4xx are permanent.
func (c *Client) fetchPrimary(ctx context.Context, rssURL string) ([]RawItem, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var out rss2jsonResponse
	operation := func() error {
		req, err := sling.New().
			Client(c.http).
			Get(c.rss2jsonURL).
			QueryStruct(&rss2jsonQuery{RSSURL: rssURL}).
			Request()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("building request: %w", err))
		}
		req = req.WithContext(ctx)
		req.Header.Set("User-Agent", UserAgent)

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("rss2json http %d", resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			return err
		}

		out = rss2jsonResponse{}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return backoff.Permanent(fmt.Errorf("rss2json decode: %w", err))
		}
		if out.Status != "ok" {
			return backoff.Permanent(fmt.Errorf("rss2json status %q", out.Status))
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), primaryRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	sourceName := out.Feed.Title
	if sourceName == "" {
		sourceName = "Google News RSS"
	}

	items := make([]RawItem, 0, len(out.Items))
	for _, item := range out.Items {
		if len(items) >= c.maxItems {
			break
		}
		items = append(items, RawItem{
			Title:       item.Title,
			Link:        item.Link,
			PublishedAt: item.PubDate,
			Description: item.Description,
			SourceName:  sourceName,
		})
	}
	return items, nil
}

// fetchFallback retrieves the raw RSS XML through the passthrough proxy and
// parses it with gofeed.
func (c *Client) fetchFallback(ctx context.Context, rssURL string) ([]RawItem, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.proxyURL+url.QueryEscape(rssURL), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/rss+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.1")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("proxy fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("proxy http %d", resp.StatusCode)
	}

	parsed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	// The proxy strips provenance, so items carry the generic source name.
	sourceName := "Google News RSS"

	items := make([]RawItem, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if len(items) >= c.maxItems {
			break
		}
		published := item.Published
		if published == "" {
			published = item.Updated
		}
		items = append(items, RawItem{
			Title:       item.Title,
			Link:        item.Link,
			PublishedAt: published,
			Description: item.Description,
			SourceName:  sourceName,
		})
	}
	return items, nil
}
