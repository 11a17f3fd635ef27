package sheets

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/CrestNiraj12/travelgram/domain"
)

// TableFetcher downloads the two tables of a condition.
type TableFetcher interface {
	FetchTables(ctx context.Context, tables domain.Tables) (posts, comments string, err error)
}

// Loader implements app.FeedService on top of a sheet export.
type Loader struct {
	fetcher TableFetcher
	media   Media
	log     *slog.Logger
	shuffle func([]domain.Post) []domain.Post
}

// NewLoader creates a feed loader. A nil logger discards diagnostics.
func NewLoader(fetcher TableFetcher, media Media, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Loader{
		fetcher: fetcher,
		media:   media,
		log:     log,
		shuffle: lo.Shuffle[domain.Post, []domain.Post],
	}
}

// Load fetches both tables, decodes them, attaches comments to their posts
// newest first and returns the posts in random order.
func (l *Loader) Load(ctx context.Context, condition domain.Condition) ([]domain.Post, error) {
	tables, ok := condition.Tables()
	if !ok {
		return nil, fmt.Errorf("unknown condition %q", condition)
	}

	postsCSV, commentsCSV, err := l.fetcher.FetchTables(ctx, tables)
	if err != nil {
		return nil, err
	}

	posts := DecodePosts(ParseRows(postsCSV), l.media)
	comments := decodeComments(ParseRows(commentsCSV))
	if len(posts.Ignored) > 0 || len(comments.Ignored) > 0 {
		l.log.Debug("ignored sheet columns",
			"posts_sheet", tables.Posts, "posts_columns", posts.Ignored,
			"comments_sheet", tables.Comments, "comments_columns", comments.Ignored)
	}

	feed := attachComments(posts.Records, comments.Records)
	l.log.Info("feed loaded",
		"condition", condition, "posts", len(feed), "comments", len(comments.Records))
	return l.shuffle(feed), nil
}

func attachComments(posts []domain.Post, rows []commentRow) []domain.Post {
	byPost := lo.GroupBy(rows, func(r commentRow) string { return r.PostID })
	for i := range posts {
		matched := byPost[posts[i].ID]
		comments := lo.Map(matched, func(r commentRow, _ int) domain.Comment { return r.Comment })
		domain.SortCommentsNewestFirst(comments)
		posts[i].Comments = comments
	}
	return posts
}
