// Package card renders social preview cards: a flat parameter set is resolved
// into a RenderRequest, which Render turns into a self-contained 1200x630 SVG
// document. Everything in this package is pure and safe for concurrent use.
package card

// DefaultTitle is used when the title parameter is missing or empty.
const DefaultTitle = "Hello World"

// Recognised parameter keys.
const (
	ParamTitle    = "title"
	ParamSubtitle = "subtitle"
	ParamAuthor   = "author"
	ParamDomain   = "domain"
	ParamTheme    = "theme"
	ParamLayout   = "layout"
	ParamEmoji    = "emoji"
	ParamDate     = "date"
)

// Params is a flat string-keyed parameter source. url.Values satisfies it.
type Params interface {
	Get(key string) string
}

// MapParams adapts a plain map to Params.
type MapParams map[string]string

// Get returns the value stored under key, or "" when absent.
func (m MapParams) Get(key string) string {
	return m[key]
}

// RenderRequest is the validated input to Render. Empty optional fields are
// omitted from the card.
type RenderRequest struct {
	Title    string
	Subtitle string
	Author   string
	Domain   string
	Emoji    string
	Date     string
	Theme    ThemeID
	Layout   LayoutID
}

// Resolve builds a RenderRequest from raw parameters. It never fails: a
// missing title becomes DefaultTitle and unknown theme or layout names fall
// back to their defaults.
func Resolve(params Params) RenderRequest {
	if params == nil {
		params = MapParams{}
	}

	title := params.Get(ParamTitle)
	if title == "" {
		title = DefaultTitle
	}

	return RenderRequest{
		Title:    title,
		Subtitle: params.Get(ParamSubtitle),
		Author:   params.Get(ParamAuthor),
		Domain:   params.Get(ParamDomain),
		Emoji:    params.Get(ParamEmoji),
		Date:     params.Get(ParamDate),
		Theme:    ParseTheme(params.Get(ParamTheme)),
		Layout:   ParseLayout(params.Get(ParamLayout)),
	}
}

// Values returns the request as a parameter map, omitting empty fields.
// Resolving the result yields the same request.
func (r RenderRequest) Values() map[string]string {
	values := map[string]string{
		ParamTitle:  r.Title,
		ParamTheme:  string(r.Theme),
		ParamLayout: string(r.Layout),
	}
	optional := map[string]string{
		ParamSubtitle: r.Subtitle,
		ParamAuthor:   r.Author,
		ParamDomain:   r.Domain,
		ParamEmoji:    r.Emoji,
		ParamDate:     r.Date,
	}
	for key, value := range optional {
		if value != "" {
			values[key] = value
		}
	}
	return values
}
