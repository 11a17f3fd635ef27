package domain

import "testing"

func TestSortCommentsNewestFirst(t *testing.T) {
	comments := []Comment{
		{ID: "old", Timestamp: "2024-01-01 10:00:00"},
		{ID: "new", Timestamp: "2024-01-02 10:00:00"},
	}
	SortCommentsNewestFirst(comments)
	if comments[0].ID != "new" || comments[1].ID != "old" {
		t.Fatalf("expected newest first, got %#v", comments)
	}
}

func TestSortCommentsNewestFirst_MixedLayoutsAndUnparseable(t *testing.T) {
	comments := []Comment{
		{ID: "bad1", Timestamp: "soon"},
		{ID: "mid", Timestamp: "1/5/2024 8:00:00"},
		{ID: "bad2", Timestamp: ""},
		{ID: "latest", Timestamp: "2024-02-01 00:00:00"},
	}
	SortCommentsNewestFirst(comments)

	want := []string{"latest", "mid", "bad1", "bad2"}
	for i, id := range want {
		if comments[i].ID != id {
			t.Fatalf("position %d: got %q want %q (%#v)", i, comments[i].ID, id, comments)
		}
	}
}

func TestPrependComment_KeepsNewestFirst(t *testing.T) {
	p := Post{Comments: []Comment{{ID: "a"}, {ID: "b"}}}
	p.PrependComment(Comment{ID: "live"})
	if len(p.Comments) != 3 || p.Comments[0].ID != "live" {
		t.Fatalf("expected live comment first, got %#v", p.Comments)
	}
}
