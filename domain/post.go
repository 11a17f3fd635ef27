package domain

// PlaceholderPath is the local image shown when a post or avatar has no media.
const PlaceholderPath = "/placeholder.svg"

// ContentKind is the media type of a post.
type ContentKind string

const (
	ContentImage ContentKind = "image"
	ContentVideo ContentKind = "video"
)

// ParseContentKind accepts only the closed set of kinds.
func ParseContentKind(s string) (ContentKind, bool) {
	switch ContentKind(s) {
	case ContentImage, ContentVideo:
		return ContentKind(s), true
	default:
		return "", false
	}
}

// Post is a single feed entry.
type Post struct {
	ID           string      `json:"id"`
	Username     string      `json:"username"`
	AvatarURL    string      `json:"avatarUrl,omitempty"`
	ContentURL   string      `json:"contentUrl"`
	ThumbnailURL string      `json:"thumbnailUrl,omitempty"`
	Kind         ContentKind `json:"contentType"`
	Caption      string      `json:"caption"`
	Likes        int         `json:"likes"`
	Comments     []Comment   `json:"comments"`  // Newest first
	Timestamp    string      `json:"timestamp"` // Loosely formatted, see ParseTimestamp
	Location     string      `json:"location,omitempty"`
}

// Comment is a participant or seeded comment attached to a post.
type Comment struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// EnsureContent enforces that kind and URL are set together. When either is
// missing both are replaced with the placeholder image.
func (p *Post) EnsureContent(placeholder string) {
	if p.Kind == "" || p.ContentURL == "" {
		p.Kind = ContentImage
		p.ContentURL = placeholder
	}
}

// PrependComment adds a live comment ahead of the stored ones.
//
// Stored comments are sorted newest first, so a comment stamped with the
// current time belongs at the front as long as no stored comment is dated
// in the future.
func (p *Post) PrependComment(c Comment) {
	p.Comments = append([]Comment{c}, p.Comments...)
}
