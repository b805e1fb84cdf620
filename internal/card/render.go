package card

import (
	"bytes"
	"fmt"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// Canvas dimensions shared by every layout.
const (
	Width  = 1200
	Height = 630
)

// Length limits applied before escaping.
const (
	TitleMaxLength    = 80
	SubtitleMaxLength = 120
)

// ContentType is the media type of documents produced by Render.
const ContentType = "image/svg+xml"

// Render produces the complete SVG document for req. It is deterministic and
// has no failure path.
func Render(req RenderRequest) string {
	theme := ThemeByID(req.Theme)
	fragments := LayoutByID(req.Layout).Compose(prepare(req), theme)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(Width, Height, fmt.Sprintf(`viewBox="0 0 %d %d"`, Width, Height))

	canvas.Def()
	writeGradient(&buf, "bg", theme.Background)
	buf.WriteString(`<filter id="noise">` +
		`<feTurbulence type="fractalNoise" baseFrequency="0.7" numOctaves="4" stitchTiles="stitch"/>` +
		`<feColorMatrix type="saturate" values="0"/>` +
		"</filter>\n")
	canvas.DefEnd()

	canvas.Rect(0, 0, Width, Height, `fill="url(#bg)"`)
	canvas.Rect(0, 0, Width, Height, `filter="url(#noise)"`, `opacity="0.03"`)

	buf.WriteString(fragments.Decoration)
	buf.WriteString(fragments.Content)

	canvas.End()
	return buf.String()
}

// prepare truncates and escapes the request text in that order.
func prepare(req RenderRequest) Text {
	text := Text{
		Title:    Escape(Truncate(req.Title, TitleMaxLength)),
		Subtitle: Escape(Truncate(req.Subtitle, SubtitleMaxLength)),
		Author:   Escape(req.Author),
		Domain:   Escape(req.Domain),
		Emoji:    Escape(req.Emoji),
		Date:     Escape(req.Date),
	}
	if req.Author != "" {
		first := []rune(req.Author)[0]
		text.Initial = Escape(strings.ToUpper(string(first)))
	}
	if req.Domain != "" {
		label, _, _ := strings.Cut(req.Domain, ".")
		text.Mark = Escape(strings.ToUpper(label))
	}
	return text
}

func writeGradient(buf *bytes.Buffer, id string, stops Gradient) {
	fmt.Fprintf(buf, `<linearGradient id="%s" x1="0%%" y1="0%%" x2="100%%" y2="100%%">`+"\n", id)
	offsets := [...]int{0, 50, 100}
	for i, color := range stops {
		fmt.Fprintf(buf, `<stop offset="%d%%" stop-color="%s"/>`+"\n", offsets[i], color)
	}
	buf.WriteString("</linearGradient>\n")
}
