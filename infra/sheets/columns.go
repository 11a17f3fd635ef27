package sheets

import (
	"strconv"
	"strings"

	"github.com/CrestNiraj12/travelgram/domain"
)

type postSetter func(p *domain.Post, value string, media Media)

// postColumns is the complete set of post columns understood by the decoder.
// Columns not listed here are reported in Decoded.Ignored.
var postColumns = map[string]postSetter{
	"id":        func(p *domain.Post, v string, _ Media) { p.ID = v },
	"username":  func(p *domain.Post, v string, _ Media) { p.Username = v },
	"caption":   func(p *domain.Post, v string, _ Media) { p.Caption = v },
	"location":  func(p *domain.Post, v string, _ Media) { p.Location = v },
	"timestamp": func(p *domain.Post, v string, _ Media) { p.Timestamp = v },
	"userAvatar": func(p *domain.Post, v string, m Media) {
		p.AvatarURL = m.AvatarURL(v)
	},
	"contentUrl": func(p *domain.Post, v string, m Media) {
		p.ContentURL = m.ContentURL(v)
	},
	"thumbnailUrl": func(p *domain.Post, v string, m Media) {
		p.ThumbnailURL = m.ContentURL(v)
	},
	"likes": func(p *domain.Post, v string, _ Media) {
		p.Likes = parseLikes(v)
	},
	"contentType": func(p *domain.Post, v string, _ Media) {
		p.Kind, _ = domain.ParseContentKind(v)
	},
}

// commentRow carries the post foreign key only until the comment is attached.
type commentRow struct {
	PostID  string
	Comment domain.Comment
}

type commentSetter func(c *commentRow, value string)

var commentColumns = map[string]commentSetter{
	"id":        func(c *commentRow, v string) { c.Comment.ID = v },
	"postId":    func(c *commentRow, v string) { c.PostID = v },
	"username":  func(c *commentRow, v string) { c.Comment.Username = v },
	"text":      func(c *commentRow, v string) { c.Comment.Text = v },
	"timestamp": func(c *commentRow, v string) { c.Comment.Timestamp = v },
}

// Decoded holds typed records plus the header names nothing mapped.
type Decoded[T any] struct {
	Records []T
	Ignored []string
}

// DecodePosts maps data rows onto posts using the header in rows[0].
func DecodePosts(rows [][]string, media Media) Decoded[domain.Post] {
	var out Decoded[domain.Post]
	if len(rows) == 0 {
		return out
	}
	header := rows[0]

	setters := make([]postSetter, len(header))
	for i, name := range header {
		if set, ok := postColumns[name]; ok {
			setters[i] = set
		} else {
			out.Ignored = append(out.Ignored, name)
		}
	}

	out.Records = make([]domain.Post, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var p domain.Post
		for i, set := range setters {
			if set != nil {
				set(&p, field(row, i), media)
			}
		}
		p.EnsureContent(media.Placeholder)
		out.Records = append(out.Records, p)
	}
	return out
}

func decodeComments(rows [][]string) Decoded[commentRow] {
	var out Decoded[commentRow]
	if len(rows) == 0 {
		return out
	}
	header := rows[0]

	setters := make([]commentSetter, len(header))
	for i, name := range header {
		if set, ok := commentColumns[name]; ok {
			setters[i] = set
		} else {
			out.Ignored = append(out.Ignored, name)
		}
	}

	out.Records = make([]commentRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var c commentRow
		for i, set := range setters {
			if set != nil {
				set(&c, field(row, i))
			}
		}
		out.Records = append(out.Records, c)
	}
	return out
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// parseLikes reads the leading integer of v, the way spreadsheet users
// expect "12 likes" or "12.0" to count as 12. Anything else is zero.
func parseLikes(v string) int {
	v = strings.TrimSpace(v)
	end := 0
	if end < len(v) && (v[end] == '+' || v[end] == '-') {
		end++
	}
	for end < len(v) && v[end] >= '0' && v[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(v[:end])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
