package sheets

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/CrestNiraj12/travelgram/domain"
)

// DefaultURLTemplate is the CSV export endpoint of a Google Sheet. The first
// verb takes the sheet ID, the second the sheet name.
const DefaultURLTemplate = "https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:csv&sheet=%s"

// FetchObserver is notified after every table fetch.
type FetchObserver interface {
	ObserveFetch(sheet string, elapsed time.Duration, err error)
}

// Client downloads sheets as raw CSV text. It never retries; the caller sees
// the first failure as is.
type Client struct {
	urlTemplate string
	sourceID    string
	http        *http.Client
	log         *slog.Logger
	observer    FetchObserver
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithURLTemplate overrides DefaultURLTemplate.
func WithURLTemplate(tmpl string) ClientOption {
	return func(c *Client) { c.urlTemplate = tmpl }
}

// WithLogger sets the logger used for fetch diagnostics.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) { c.log = l }
}

// WithObserver reports fetch outcomes, typically to metrics.
func WithObserver(o FetchObserver) ClientOption {
	return func(c *Client) { c.observer = o }
}

// NewClient creates a sheet client for the spreadsheet identified by sourceID.
// An empty sourceID is accepted here and reported on the first fetch.
func NewClient(sourceID string, opts ...ClientOption) *Client {
	c := &Client{
		urlTemplate: DefaultURLTemplate,
		sourceID:    sourceID,
		http:        &http.Client{},
		log:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchTable returns the CSV body of one sheet.
func (c *Client) FetchTable(ctx context.Context, sheet string) (string, error) {
	if c.sourceID == "" {
		return "", domain.ErrMissingSourceID
	}

	start := time.Now()
	body, err := c.get(ctx, sheet)
	if c.observer != nil {
		c.observer.ObserveFetch(sheet, time.Since(start), err)
	}
	if err != nil {
		c.log.Error("sheet fetch failed", "sheet", sheet, "error", err)
		return "", err
	}
	c.log.Debug("sheet fetched", "sheet", sheet, "bytes", len(body), "elapsed", time.Since(start))
	return body, nil
}

// FetchTables downloads the posts and comments sheets concurrently and waits
// for both. The returned error is the first failure, wrapped in a *TableError.
func (c *Client) FetchTables(ctx context.Context, tables domain.Tables) (posts, comments string, err error) {
	if c.sourceID == "" {
		return "", "", domain.ErrMissingSourceID
	}

	var g errgroup.Group
	g.Go(func() error {
		body, err := c.FetchTable(ctx, tables.Posts)
		if err != nil {
			return &TableError{Table: TablePosts, Sheet: tables.Posts, Err: err}
		}
		posts = body
		return nil
	})
	g.Go(func() error {
		body, err := c.FetchTable(ctx, tables.Comments)
		if err != nil {
			return &TableError{Table: TableComments, Sheet: tables.Comments, Err: err}
		}
		comments = body
		return nil
	})
	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return posts, comments, nil
}

func (c *Client) sheetURL(sheet string) string {
	return fmt.Sprintf(c.urlTemplate, url.PathEscape(c.sourceID), url.QueryEscape(sheet))
}

func (c *Client) get(ctx context.Context, sheet string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.sheetURL(sheet), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request for sheet %s: %w", sheet, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading sheet %s: %w", sheet, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("sheet %s returned %d", sheet, resp.StatusCode)
	}
	return string(data), nil
}
