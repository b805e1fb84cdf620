package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ogcard/internal/card"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderWritesToStdout(t *testing.T) {
	out, err := execute(t, "render", "--title", "From the CLI", "--theme", "forest", "--layout", "centered")
	if err != nil {
		t.Fatalf("render returned error: %v", err)
	}
	want := card.Render(card.Resolve(card.MapParams{
		card.ParamTitle:  "From the CLI",
		card.ParamTheme:  "forest",
		card.ParamLayout: "centered",
	}))
	if out != want {
		t.Fatal("expected CLI output to match Render")
	}
}

func TestRenderDefaults(t *testing.T) {
	out, err := execute(t, "render")
	if err != nil {
		t.Fatalf("render returned error: %v", err)
	}
	if !strings.Contains(out, card.DefaultTitle) {
		t.Fatal("expected default title")
	}
}

func TestRenderWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.svg")
	out, err := execute(t, "render", "--title", "Saved", "--out", path)
	if err != nil {
		t.Fatalf("render returned error: %v", err)
	}
	if out != "" {
		t.Fatalf("expected nothing on stdout, got %d bytes", len(out))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "<?xml") || !strings.Contains(string(data), "Saved") {
		t.Fatalf("unexpected file contents: %.80s", data)
	}
}

func TestRenderRejectsPositionalArgs(t *testing.T) {
	if _, err := execute(t, "render", "extra"); err == nil {
		t.Fatal("expected error for positional argument")
	}
}

func TestListCommands(t *testing.T) {
	themes, err := execute(t, "themes")
	if err != nil {
		t.Fatalf("themes returned error: %v", err)
	}
	for _, theme := range card.Themes() {
		if !strings.Contains(themes, string(theme.ID)) {
			t.Fatalf("expected theme %q in output", theme.ID)
		}
	}

	layouts, err := execute(t, "layouts")
	if err != nil {
		t.Fatalf("layouts returned error: %v", err)
	}
	if got := strings.Count(strings.TrimSpace(layouts), "\n") + 1; got != len(card.Layouts()) {
		t.Fatalf("expected %d layout lines, got %d", len(card.Layouts()), got)
	}
}
