package sheets

import "github.com/CrestNiraj12/travelgram/domain"

// DefaultMediaBaseURL hosts the images and videos referenced by the sheets.
const DefaultMediaBaseURL = "https://philippmasur.de/research/photogram/"

// Media turns the bare file names stored in the sheet into URLs.
type Media struct {
	BaseURL     string
	Extension   string
	Placeholder string
}

// DefaultMedia returns the media settings used when nothing is configured.
func DefaultMedia() Media {
	return Media{
		BaseURL:     DefaultMediaBaseURL,
		Extension:   ".jpg",
		Placeholder: domain.PlaceholderPath,
	}
}

// ContentURL builds the URL for a post's image, video or thumbnail.
func (m Media) ContentURL(filename string) string {
	return m.build(filename)
}

// AvatarURL builds the URL for a profile picture.
func (m Media) AvatarURL(filename string) string {
	return m.build(filename)
}

func (m Media) build(filename string) string {
	if filename == "" {
		return m.Placeholder
	}
	return m.BaseURL + filename + m.Extension
}
