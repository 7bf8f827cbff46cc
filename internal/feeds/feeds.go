// Package feeds fetches RSS and Atom feeds and reports their newest entry.
package feeds

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/tripsit/tripsit-api/internal/sanitize"
)

var ErrEmptyFeed = errors.New("feeds: feed has no items")

// Summary describes a feed at the time it was fetched.
type Summary struct {
	Title        string
	LatestItemID string
	ItemCount    int
}

// Fetcher downloads and parses feeds.
type Fetcher struct {
	parser *gofeed.Parser
}

// NewFetcher builds a fetcher. A nil client gets one with a 15 second timeout.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	p := gofeed.NewParser()
	p.Client = client
	return &Fetcher{parser: p}
}

// Latest fetches url and returns the id of its newest item. Items are ranked by
// published or updated time; undated feeds fall back to document order.
func (f *Fetcher) Latest(ctx context.Context, url string) (*Summary, error) {
	feed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("feeds: parse %s: %w", url, err)
	}
	if len(feed.Items) == 0 {
		return nil, ErrEmptyFeed
	}

	newest := feed.Items[0]
	newestAt := itemTime(newest)
	for _, item := range feed.Items[1:] {
		if t := itemTime(item); t != nil && (newestAt == nil || t.After(*newestAt)) {
			newest, newestAt = item, t
		}
	}

	return &Summary{
		Title:        sanitize.Plain(feed.Title),
		LatestItemID: ItemID(newest),
		ItemCount:    len(feed.Items),
	}, nil
}

// ItemID identifies an item by GUID, falling back to its link.
func ItemID(item *gofeed.Item) string {
	if item.GUID != "" {
		return item.GUID
	}
	return item.Link
}

func itemTime(item *gofeed.Item) *time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed
	}
	return item.UpdatedParsed
}
