package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// commentMarker ends the header line written above the comment body.
const commentMarker = "-->"

const header = "<!-- Comment on @%s's post. Save and quit to post, leave empty to cancel. " + commentMarker + "\n\n"

// EnvEditor opens comments in $EDITOR, falling back to vi. Callers run the
// returned command through tea.ExecProcess.
type EnvEditor struct{}

// NewEnvEditor creates an EnvEditor.
func NewEnvEditor() *EnvEditor {
	return &EnvEditor{}
}

// Cmd writes a temp file headed with the post author and returns the editor
// command for it together with the file path.
func (e *EnvEditor) Cmd(author string) (*exec.Cmd, string, error) {
	name := os.Getenv("EDITOR")
	if name == "" {
		name = "vi"
	}

	f, err := os.CreateTemp("", "travelgram-comment-*.md")
	if err != nil {
		return nil, "", fmt.Errorf("creating temp file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, header, author); err != nil {
		os.Remove(f.Name())
		return nil, "", fmt.Errorf("writing temp file: %w", err)
	}
	return exec.Command(name, f.Name()), f.Name(), nil
}

// ReadContent returns the comment text below the header and removes the file.
func (e *EnvEditor) ReadContent(path string) (string, error) {
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading temp file: %w", err)
	}

	text := string(data)
	if _, body, ok := strings.Cut(text, commentMarker); ok {
		text = body
	}
	return strings.TrimSpace(text), nil
}
