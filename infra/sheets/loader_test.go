package sheets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrestNiraj12/travelgram/domain"
)

type stubFetcher struct {
	posts    string
	comments string
	err      error
	got      domain.Tables
}

func (f *stubFetcher) FetchTables(_ context.Context, tables domain.Tables) (string, string, error) {
	f.got = tables
	if f.err != nil {
		return "", "", f.err
	}
	return f.posts, f.comments, nil
}

const postsCSV = `"id","username","contentUrl","contentType","caption","likes"
"p1","anna","beach","image","Beach day","10"
"p2","ben","","","No media","x"
"p3","cleo","clip","video","Waves","3"`

const commentsCSV = `"id","postId","username","text","timestamp"
"c1","p1","ben","first","2024-01-01 10:00:00"
"c2","p1","cleo","second","2024-01-02 10:00:00"
"c3","p3","anna","wow","1/3/2024 8:00:00"
"c4","missing","dan","orphan","2024-01-05 10:00:00"`

func TestLoader_Load(t *testing.T) {
	f := &stubFetcher{posts: postsCSV, comments: commentsCSV}
	l := NewLoader(f, DefaultMedia(), nil)
	l.shuffle = func(p []domain.Post) []domain.Post { return p }

	posts, err := l.Load(context.Background(), domain.Condition2)
	require.NoError(t, err)
	assert.Equal(t, domain.Tables{Posts: "Posts2", Comments: "Comments2"}, f.got)
	require.Len(t, posts, 3)

	p1 := posts[0]
	require.Len(t, p1.Comments, 2)
	assert.Equal(t, "c2", p1.Comments[0].ID, "newest comment first")
	assert.Equal(t, "c1", p1.Comments[1].ID)

	p2 := posts[1]
	assert.Equal(t, domain.PlaceholderPath, p2.ContentURL)
	assert.Equal(t, domain.ContentImage, p2.Kind)
	assert.Zero(t, p2.Likes)
	assert.Empty(t, p2.Comments)

	assert.Equal(t, domain.ContentVideo, posts[2].Kind)
	require.Len(t, posts[2].Comments, 1)
}

func TestLoader_LoadShufflesAllPosts(t *testing.T) {
	l := NewLoader(&stubFetcher{posts: postsCSV, comments: commentsCSV}, DefaultMedia(), nil)

	posts, err := l.Load(context.Background(), domain.Condition1)
	require.NoError(t, err)
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []string{"p1", "p2", "p3"}, ids)
}

func TestLoader_LoadFailsWithoutPartialResult(t *testing.T) {
	fetchErr := &TableError{Table: TablePosts, Sheet: "Posts1", Err: errors.New("boom")}
	l := NewLoader(&stubFetcher{err: fetchErr}, DefaultMedia(), nil)

	posts, err := l.Load(context.Background(), domain.Condition1)
	assert.Nil(t, posts)
	assert.ErrorIs(t, err, fetchErr)
}

func TestLoader_UnknownCondition(t *testing.T) {
	l := NewLoader(&stubFetcher{}, DefaultMedia(), nil)
	_, err := l.Load(context.Background(), domain.Condition("condition7"))
	assert.Error(t, err)
}
