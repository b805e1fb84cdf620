package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"  Launch: Day #1!  ", "launch-day-1"},
		{"🚀", "card"},
		{"", "card"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := slugify(tt.input); got != tt.want {
				t.Fatalf("slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestUniqueName(t *testing.T) {
	t.Parallel()

	used := map[string]bool{}
	got := []string{
		uniqueName(used, "a"),
		uniqueName(used, "b"),
		uniqueName(used, "a"),
		uniqueName(used, "a-2"),
		uniqueName(used, "a"),
	}
	want := []string{"a", "b", "a-2", "a-2-2", "a-3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("uniqueName call %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReadCSVMapsHeaderToFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.csv")
	content := "Title, Theme ,layout,extra\nFirst post,ocean,split,x\nShort row\n\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	records, err := readCSV(path)
	if err != nil {
		t.Fatalf("readCSV returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0]["title"] != "First post" || records[0]["theme"] != "ocean" || records[0]["layout"] != "split" {
		t.Fatalf("unexpected first record %v", records[0])
	}
	if records[1]["title"] != "Short row" {
		t.Fatalf("unexpected second record %v", records[1])
	}
	if _, ok := records[1]["theme"]; ok {
		t.Fatal("expected missing column to be absent")
	}
}

func TestReadCSVRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if _, err := readCSV(path); err == nil {
		t.Fatal("expected error for empty csv")
	}
}

func TestBatchRendersEveryRow(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "cards.csv")
	content := "title,theme\nHello,rose\nHello,forest\n"
	if err := os.WriteFile(csvPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	outDir := filepath.Join(dir, "out")

	out, err := execute(t, "batch", csvPath, "--out-dir", outDir)
	if err != nil {
		t.Fatalf("batch returned error: %v", err)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Fatalf("expected 2 written paths, got %d", got)
	}

	for name, accent := range map[string]string{"hello.svg": "#f43f5e", "hello-2.svg": "#22c55e"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !strings.Contains(string(data), accent) {
			t.Fatalf("expected %s to use accent %s", name, accent)
		}
	}
}

func TestBatchNeverOverwritesEarlierRows(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "cards.csv")
	if err := os.WriteFile(csvPath, []byte("title\nA\nA\nA 2\n"), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	outDir := filepath.Join(dir, "out")

	out, err := execute(t, "batch", csvPath, "--out-dir", outDir)
	if err != nil {
		t.Fatalf("batch returned error: %v", err)
	}

	paths := strings.Fields(out)
	seen := map[string]bool{}
	for _, p := range paths {
		if seen[p] {
			t.Fatalf("path %s written twice: %v", p, paths)
		}
		seen[p] = true
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 files, got %d", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(outDir, "a-2-2.svg"))
	if err != nil {
		t.Fatalf("read third card: %v", err)
	}
	if !strings.Contains(string(data), "A 2") {
		t.Fatal("expected third row to keep its own file")
	}
}
