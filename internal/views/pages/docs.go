package pages

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"ogcard/internal/card"
	"ogcard/internal/views/components"
	"ogcard/internal/views/layout"
)

// ImagePath is the route that serves rendered cards.
const ImagePath = "/api/og"

// DocsData feeds the playground page.
type DocsData struct {
	// Request holds the values the form is prefilled with.
	Request card.RenderRequest
	// Origin is the scheme and host used in the copy-paste snippet, e.g.
	// "https://cards.example.com". Empty yields relative URLs.
	Origin string
}

// ImageURL returns the card URL for req, omitting empty optional fields.
func ImageURL(origin string, req card.RenderRequest) string {
	values := url.Values{}
	for key, value := range req.Values() {
		values.Set(key, value)
	}
	return strings.TrimRight(origin, "/") + ImagePath + "?" + values.Encode()
}

// MetaSnippet returns the Open Graph and Twitter tags that reference the card.
func MetaSnippet(origin string, req card.RenderRequest) string {
	src := ImageURL(origin, req)
	return strings.Join([]string{
		fmt.Sprintf(`<meta property="og:image" content="%s" />`, templ.EscapeString(src)),
		fmt.Sprintf(`<meta property="og:image:width" content="%d" />`, card.Width),
		fmt.Sprintf(`<meta property="og:image:height" content="%d" />`, card.Height),
		`<meta name="twitter:card" content="summary_large_image" />`,
		fmt.Sprintf(`<meta name="twitter:image" content="%s" />`, templ.EscapeString(src)),
	}, "\n")
}

func themeOptions() []components.Option {
	themes := card.Themes()
	options := make([]components.Option, 0, len(themes))
	for _, theme := range themes {
		options = append(options, components.Option{Value: string(theme.ID), Label: theme.Label})
	}
	return options
}

func layoutOptions() []components.Option {
	layouts := card.Layouts()
	options := make([]components.Option, 0, len(layouts))
	for _, info := range layouts {
		options = append(options, components.Option{Value: string(info.ID), Label: info.Label + ": " + info.Description})
	}
	return options
}

func paramRows() []components.ParamRow {
	return []components.ParamRow{
		{Name: card.ParamTitle, Default: card.DefaultTitle, Description: fmt.Sprintf("Main heading, cut to %d characters and wrapped to at most three lines.", card.TitleMaxLength)},
		{Name: card.ParamSubtitle, Description: fmt.Sprintf("Secondary line, cut to %d characters.", card.SubtitleMaxLength)},
		{Name: card.ParamAuthor, Description: "Author name. Its first letter becomes the avatar initial."},
		{Name: card.ParamDomain, Description: "Site name shown as a label. Its first label becomes the split watermark."},
		{Name: card.ParamTheme, Default: string(card.DefaultTheme), Description: "Colour palette. Unknown values fall back to the default."},
		{Name: card.ParamLayout, Default: string(card.DefaultLayout), Description: "Arrangement of the card. Unknown values fall back to the default."},
		{Name: card.ParamEmoji, Description: "Decorative glyph."},
		{Name: card.ParamDate, Description: "Free-form date label shown next to the author."},
	}
}

// Docs renders the playground: a form, a live preview and the parameter reference.
func Docs(data DocsData) templ.Component {
	req := data.Request
	preview := ImageURL("", req)

	head := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, MetaSnippet(data.Origin, req))
		return err
	})

	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<header><h1>Social card generator</h1>`+
			`<p>Request <code>GET `+ImagePath+`</code> with query parameters to get a `+
			fmt.Sprintf("%dx%d", card.Width, card.Height)+` SVG card.</p></header>`); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<section class="panel"><form method="get" action="/" hx-get="/" hx-target="#preview" hx-swap="outerHTML" hx-push-url="true">`); err != nil {
			return err
		}
		fields := []templ.Component{
			components.TextField("Title", card.ParamTitle, req.Title, card.DefaultTitle),
			components.TextField("Subtitle", card.ParamSubtitle, req.Subtitle, ""),
			components.TextField("Author", card.ParamAuthor, req.Author, ""),
			components.TextField("Domain", card.ParamDomain, req.Domain, "example.com"),
			components.TextField("Emoji", card.ParamEmoji, req.Emoji, ""),
			components.TextField("Date", card.ParamDate, req.Date, ""),
			components.Select("Theme", card.ParamTheme, string(req.Theme), themeOptions()),
			components.Select("Layout", card.ParamLayout, string(req.Layout), layoutOptions()),
		}
		for _, field := range fields {
			if err := field.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<button type="submit">Update preview</button></form></section>`); err != nil {
			return err
		}

		if err := components.Preview(preview, "Card preview").Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<section class="panel"><h2>Embed</h2>`); err != nil {
			return err
		}
		if err := components.CodeBlock(MetaSnippet(data.Origin, req)).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</section><section class="panel"><h2>Parameters</h2>`); err != nil {
			return err
		}
		if err := components.ParamsTable(paramRows()).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})

	return layout.Layout("Social card generator", head, content)
}
