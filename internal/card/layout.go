package card

import (
	"bytes"
	"fmt"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// LayoutID names one of the fixed composition strategies.
type LayoutID string

const (
	LayoutStandard LayoutID = "standard"
	LayoutCentered LayoutID = "centered"
	LayoutSplit    LayoutID = "split"
	LayoutMinimal  LayoutID = "minimal"
	LayoutBold     LayoutID = "bold"

	// DefaultLayout is used whenever the requested layout is missing or unknown.
	DefaultLayout = LayoutStandard
)

const fontFamily = `font-family="system-ui, -apple-system, sans-serif"`

// LayoutInfo describes a layout for listings.
type LayoutInfo struct {
	ID          LayoutID
	Label       string
	Description string
}

// Fragments are the two markup pieces a layout contributes to the document.
type Fragments struct {
	Decoration string
	Content    string
}

// Text is the request text after truncation and escaping, plus the derived
// values some layouts display.
type Text struct {
	Title    string
	Subtitle string
	Author   string
	Domain   string
	Emoji    string
	Date     string
	// Initial is the upper-cased first character of the author.
	Initial string
	// Mark is the upper-cased first label of the domain.
	Mark string
}

// Byline joins author and domain with a middle dot when both are present.
func (t Text) Byline() string {
	switch {
	case t.Author != "" && t.Domain != "":
		return t.Author + " · " + t.Domain
	case t.Author != "":
		return t.Author
	default:
		return t.Domain
	}
}

// Layout composes the decoration and content fragments for one card.
// Implementations must depend only on their arguments.
type Layout interface {
	Compose(text Text, theme Theme) Fragments
}

// LayoutFunc adapts a function to Layout.
type LayoutFunc func(text Text, theme Theme) Fragments

// Compose calls f.
func (f LayoutFunc) Compose(text Text, theme Theme) Fragments {
	return f(text, theme)
}

var layoutOrder = []LayoutInfo{
	{ID: LayoutStandard, Label: "Standard", Description: "Domain label, wrapped title, author badge and date along the bottom."},
	{ID: LayoutCentered, Label: "Centered", Description: "Emoji, title, subtitle and byline stacked on the vertical midline."},
	{ID: LayoutSplit, Label: "Split", Description: "Left text column with a tinted right panel and rotated domain watermark."},
	{ID: LayoutMinimal, Label: "Minimal", Description: "Large title over a single rule, domain and date in the footer."},
	{ID: LayoutBold, Label: "Bold", Description: "Oversized tight title between accent bars with a byline pill."},
}

var layoutCatalogue = map[LayoutID]Layout{
	LayoutStandard: LayoutFunc(composeStandard),
	LayoutCentered: LayoutFunc(composeCentered),
	LayoutSplit:    LayoutFunc(composeSplit),
	LayoutMinimal:  LayoutFunc(composeMinimal),
	LayoutBold:     LayoutFunc(composeBold),
}

// ParseLayout maps a raw value onto the layout enumeration. Matching is exact
// and case-sensitive; anything else yields DefaultLayout.
func ParseLayout(value string) LayoutID {
	id := LayoutID(value)
	if _, ok := layoutCatalogue[id]; ok {
		return id
	}
	return DefaultLayout
}

// LayoutByID returns the strategy registered for id, falling back to the default layout.
func LayoutByID(id LayoutID) Layout {
	if layout, ok := layoutCatalogue[id]; ok {
		return layout
	}
	return layoutCatalogue[DefaultLayout]
}

// Layouts lists every layout in presentation order.
func Layouts() []LayoutInfo {
	out := make([]LayoutInfo, len(layoutOrder))
	copy(out, layoutOrder)
	return out
}

// fragment accumulates markup for one half of a layout.
type fragment struct {
	buf    bytes.Buffer
	canvas *svg.SVG
}

func newFragment() *fragment {
	f := &fragment{}
	f.canvas = svg.New(&f.buf)
	return f
}

func (f *fragment) String() string {
	return f.buf.String()
}

// text writes a text element whose body is already escaped.
func (f *fragment) text(body string, attrs ...string) {
	fmt.Fprintf(&f.buf, "<text %s>%s</text>\n", strings.Join(attrs, " "), body)
}

// wrapped writes lines as tspans stacked lineHeight apart.
func (f *fragment) wrapped(lines []string, lineHeight int, attrs ...string) {
	fmt.Fprintf(&f.buf, "<text %s>", strings.Join(attrs, " "))
	for i, line := range lines {
		dy := 0
		if i > 0 {
			dy = lineHeight
		}
		fmt.Fprintf(&f.buf, `<tspan x="0" dy="%d">%s</tspan>`, dy, line)
	}
	f.buf.WriteString("</text>\n")
}

// grid writes a faint 60-unit grid covering the canvas.
func (f *fragment) grid(color string) {
	f.buf.WriteString(`<pattern id="grid" width="60" height="60" patternUnits="userSpaceOnUse">` + "\n")
	f.canvas.Path("M 60 0 L 0 0 0 60", `fill="none"`, stroke(color), `stroke-width="0.5"`, `opacity="0.1"`)
	f.buf.WriteString("</pattern>\n")
	f.canvas.Rect(0, 0, Width, Height, `fill="url(#grid)"`)
}

func (f *fragment) translate(x, y int) {
	f.canvas.Gtransform(fmt.Sprintf("translate(%d, %d)", x, y))
}

func fill(color string) string {
	return fmt.Sprintf(`fill="%s"`, color)
}

func stroke(color string) string {
	return fmt.Sprintf(`stroke="%s"`, color)
}

func fontSize(size int) string {
	return fmt.Sprintf(`font-size="%d"`, size)
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

func composeStandard(text Text, theme Theme) Fragments {
	deco := newFragment()
	deco.canvas.Rect(0, 0, Width, 6, fill(theme.Accent))
	deco.grid(theme.Accent)
	deco.canvas.Circle(-100, Height+100, 400, fill(theme.Accent), `opacity="0.05"`)
	deco.canvas.Circle(Width+50, -50, 300, fill(theme.AccentLight), `opacity="0.05"`)

	content := newFragment()
	if text.Emoji != "" || text.Domain != "" {
		content.translate(80, 80)
		if text.Emoji != "" {
			content.text(text.Emoji, fontSize(56))
		}
		if text.Domain != "" {
			content.text(text.Domain,
				fmt.Sprintf(`x="%s"`, pick(text.Emoji != "", "80", "0")), `y="45"`,
				fontFamily, fontSize(18), `font-weight="500"`, fill(theme.Accent),
				`text-transform="uppercase"`, `letter-spacing="2"`)
		}
		content.canvas.Gend()
	}

	content.translate(80, 220)
	content.wrapped(WordWrap(text.Title, 1000, 58), 70,
		fontFamily, fontSize(58), `font-weight="700"`, fill(theme.Text))
	content.canvas.Gend()

	if text.Subtitle != "" {
		content.translate(80, 420)
		content.text(text.Subtitle, fontFamily, fontSize(24), fill(theme.Muted))
		content.canvas.Gend()
	}

	if text.Author != "" || text.Date != "" {
		content.translate(80, Height-60)
		if text.Author != "" {
			content.canvas.Circle(20, -8, 20, fill(theme.Accent), `opacity="0.2"`)
			content.text(text.Initial, `x="20"`, `y="-2"`, fontSize(20), `text-anchor="middle"`, fill(theme.Text))
			content.text(text.Author, `x="55"`, fontFamily, fontSize(18), fill(theme.Text))
		}
		if text.Date != "" {
			content.text(text.Date, fmt.Sprintf(`x="%d"`, Width-160), fontFamily, fontSize(16), fill(theme.Muted))
		}
		content.canvas.Gend()
	}

	return Fragments{Decoration: deco.String(), Content: content.String()}
}

func composeCentered(text Text, theme Theme) Fragments {
	deco := newFragment()
	deco.canvas.Circle(100, 100, 300, fill(theme.Accent), `opacity="0.05"`)
	deco.canvas.Circle(1100, 530, 250, fill(theme.AccentLight), `opacity="0.05"`)

	hasEmoji := text.Emoji != ""
	content := newFragment()
	content.translate(Width/2, Height/2)
	if hasEmoji {
		content.text(text.Emoji, `x="0"`, `y="-120"`, fontSize(72), `text-anchor="middle"`)
	}
	content.text(text.Title,
		`x="0"`, fmt.Sprintf(`y="%s"`, pick(hasEmoji, "0", "-40")),
		fontFamily, fontSize(56), `font-weight="700"`, fill(theme.Text), `text-anchor="middle"`)
	if text.Subtitle != "" {
		content.text(text.Subtitle,
			`x="0"`, fmt.Sprintf(`y="%s"`, pick(hasEmoji, "60", "30")),
			fontFamily, fontSize(24), fill(theme.Muted), `text-anchor="middle"`)
	}
	if byline := text.Byline(); byline != "" {
		content.text(byline,
			`x="0"`, fmt.Sprintf(`y="%s"`, pick(hasEmoji, "130", "100")),
			fontFamily, fontSize(20), fill(theme.Accent), `text-anchor="middle"`)
	}
	content.canvas.Gend()

	return Fragments{Decoration: deco.String(), Content: content.String()}
}

func composeSplit(text Text, theme Theme) Fragments {
	deco := newFragment()
	deco.canvas.Rect(0, 0, 8, Height, fill(theme.Accent))
	deco.canvas.Rect(Width-400, 0, 400, Height, fill(theme.Accent), `opacity="0.1"`)
	deco.grid(theme.Accent)

	hasEmoji := text.Emoji != ""
	content := newFragment()
	content.translate(80, 100)
	if hasEmoji {
		content.text(text.Emoji, `x="0"`, `y="60"`, fontSize(64))
	}
	content.wrapped(WordWrap(text.Title, 500, 52), 62,
		`x="0"`, fmt.Sprintf(`y="%s"`, pick(hasEmoji, "160", "120")),
		fontFamily, fontSize(52), `font-weight="700"`, fill(theme.Text))
	if text.Subtitle != "" {
		content.text(text.Subtitle,
			`x="0"`, fmt.Sprintf(`y="%s"`, pick(hasEmoji, "280", "250")),
			fontFamily, fontSize(22), fill(theme.Muted))
	}
	content.canvas.Gend()

	if byline := text.Byline(); byline != "" {
		content.translate(80, Height-80)
		content.text(byline, fontFamily, fontSize(18), fill(theme.Accent))
		content.canvas.Gend()
	}

	if text.Mark != "" {
		content.translate(Width-200, Height/2)
		content.text(text.Mark,
			fontFamily, fontSize(120), `font-weight="800"`, fill(theme.Accent),
			`opacity="0.15"`, `text-anchor="middle"`, `transform="rotate(-90)"`)
		content.canvas.Gend()
	}

	return Fragments{Decoration: deco.String(), Content: content.String()}
}

func composeMinimal(text Text, theme Theme) Fragments {
	deco := newFragment()
	deco.canvas.Line(80, Height-80, Width-80, Height-80, stroke(theme.Accent), `stroke-width="2"`)

	content := newFragment()
	content.translate(80, Height/2-40)
	content.wrapped(WordWrap(text.Title, 1000, 64), 76,
		fontFamily, fontSize(64), `font-weight="600"`, fill(theme.Text))
	content.canvas.Gend()

	trailing := text.Date
	if trailing == "" {
		trailing = text.Author
	}
	if text.Domain != "" || trailing != "" {
		content.translate(80, Height-50)
		if text.Domain != "" {
			content.text(text.Domain, fontFamily, fontSize(18), fill(theme.Muted))
		}
		if trailing != "" {
			content.text(trailing, fmt.Sprintf(`x="%d"`, Width-160), fontFamily, fontSize(18), fill(theme.Muted))
		}
		content.canvas.Gend()
	}

	return Fragments{Decoration: deco.String(), Content: content.String()}
}

func composeBold(text Text, theme Theme) Fragments {
	deco := newFragment()
	deco.canvas.Rect(0, 0, Width, 12, fill(theme.Accent))
	deco.canvas.Rect(0, Height-12, Width, 12, fill(theme.Accent))
	deco.canvas.Circle(Width-150, 150, 200, fill(theme.Accent), `opacity="0.1"`)
	deco.canvas.Circle(Width-100, 200, 150, fill(theme.AccentLight), `opacity="0.08"`)

	content := newFragment()
	if text.Emoji != "" {
		content.translate(80, 120)
		content.text(text.Emoji, fontSize(80))
		content.canvas.Gend()
	}

	content.translate(80, Height/2+20)
	content.wrapped(WordWrap(text.Title, 900, 72), 82,
		fontFamily, fontSize(72), `font-weight="800"`, fill(theme.Text), `letter-spacing="-2"`)
	content.canvas.Gend()

	if byline := text.Byline(); byline != "" {
		content.translate(80, Height-60)
		content.canvas.Roundrect(-10, -25, pillWidth(text), 40, 20, 20, fill(theme.Accent))
		content.text(byline, fontFamily, fontSize(16), `font-weight="600"`, fill(theme.BackgroundSolid))
		content.canvas.Gend()
	}

	return Fragments{Decoration: deco.String(), Content: content.String()}
}

// pillWidth estimates the byline pill width at ten units per character.
func pillWidth(text Text) int {
	return (len([]rune(text.Author))+len([]rune(text.Domain)))*10 + 60
}
