package components

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestOptionState(t *testing.T) {
	if got := optionState("ocean", "ocean"); got != " selected" {
		t.Fatalf("expected selected state when values match, got %q", got)
	}
	if got := optionState("rose", "ocean"); got != "" {
		t.Fatalf("expected no state when values differ, got %q", got)
	}
}

func TestTextFieldEscapesValue(t *testing.T) {
	var buf bytes.Buffer
	if err := TextField("Title", "title", `"><script>`, "Hello World").Render(context.Background(), &buf); err != nil {
		t.Fatalf("render text field: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "<script>") {
		t.Fatalf("expected value to be escaped: %s", out)
	}
	for _, token := range []string{`name="title"`, `placeholder="Hello World"`, "Title"} {
		if !strings.Contains(out, token) {
			t.Fatalf("expected output to contain %q: %s", token, out)
		}
	}
}

func TestSelectMarksSelectedOption(t *testing.T) {
	options := []Option{{Value: "midnight", Label: "Midnight"}, {Value: "ocean", Label: "Ocean"}}
	var buf bytes.Buffer
	if err := Select("Theme", "theme", "ocean", options).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render select: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `<option value="ocean" selected>Ocean</option>`) {
		t.Fatalf("expected ocean to be selected: %s", out)
	}
	if strings.Count(out, " selected") != 1 {
		t.Fatalf("expected exactly one selected option: %s", out)
	}
}

func TestParamsTableRendersRows(t *testing.T) {
	rows := []ParamRow{
		{Name: "title", Default: "Hello World", Description: "Main heading"},
		{Name: "emoji", Description: "Decorative glyph"},
	}
	var buf bytes.Buffer
	if err := ParamsTable(rows).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render params table: %v", err)
	}
	out := buf.String()
	for _, token := range []string{"<code>title</code>", "Hello World", "Decorative glyph", "<td>-</td>"} {
		if !strings.Contains(out, token) {
			t.Fatalf("expected output to contain %q: %s", token, out)
		}
	}
}

func TestPreviewAndCodeBlockEscape(t *testing.T) {
	var buf bytes.Buffer
	if err := Preview("/api/og?title=a&theme=rose", "card").Render(context.Background(), &buf); err != nil {
		t.Fatalf("render preview: %v", err)
	}
	if !strings.Contains(buf.String(), `src="/api/og?title=a&amp;theme=rose"`) {
		t.Fatalf("expected escaped image source: %s", buf.String())
	}

	buf.Reset()
	if err := CodeBlock(`<meta content="x">`).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render code block: %v", err)
	}
	if !strings.Contains(buf.String(), "&lt;meta") {
		t.Fatalf("expected code to be escaped: %s", buf.String())
	}
}
