package editor

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestCmd_UsesEditorAndNamesAuthor(t *testing.T) {
	t.Setenv("EDITOR", "cat")
	e := NewEnvEditor()

	cmd, path, err := e.Cmd("alice")
	if err != nil {
		t.Fatalf("cmd failed: %v", err)
	}
	defer os.Remove(path)
	if cmd.Args[0] != "cat" || cmd.Args[len(cmd.Args)-1] != path {
		t.Fatalf("unexpected command args %v", cmd.Args)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read temp file failed: %v", err)
	}
	if !strings.Contains(string(data), "@alice's post") {
		t.Fatalf("unexpected header: %q", string(data))
	}
}

func TestCmd_FallsBackToVi(t *testing.T) {
	t.Setenv("EDITOR", "")
	cmd, path, err := NewEnvEditor().Cmd("bob")
	if err != nil {
		t.Fatalf("cmd failed: %v", err)
	}
	defer os.Remove(path)
	if cmd.Args[0] != "vi" {
		t.Fatalf("expected vi fallback, got %v", cmd.Args)
	}
}

func TestReadContent_StripsHeaderAndDeletesFile(t *testing.T) {
	e := NewEnvEditor()
	f, err := os.CreateTemp("", "travelgram-test-*.md")
	if err != nil {
		t.Fatalf("create temp failed: %v", err)
	}
	path := f.Name()
	_, _ = fmt.Fprintf(f, header, "bob")
	_, _ = f.WriteString("what a view\n")
	_ = f.Close()

	content, err := e.ReadContent(path)
	if err != nil {
		t.Fatalf("read content failed: %v", err)
	}
	if content != "what a view" {
		t.Fatalf("unexpected content: %q", content)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be deleted")
	}
}

func TestReadContent_HeaderOnlyIsEmpty(t *testing.T) {
	f, err := os.CreateTemp("", "travelgram-test-*.md")
	if err != nil {
		t.Fatalf("create temp failed: %v", err)
	}
	_, _ = fmt.Fprintf(f, header, "bob")
	_ = f.Close()

	content, err := NewEnvEditor().ReadContent(f.Name())
	if err != nil || content != "" {
		t.Fatalf("expected empty comment, got %q, %v", content, err)
	}
}
