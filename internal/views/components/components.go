package components

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Option is one entry of a Select.
type Option struct {
	Value string
	Label string
}

// ParamRow documents one query parameter.
type ParamRow struct {
	Name        string
	Default     string
	Description string
}

// TextField renders a labelled text input.
func TextField(label, name, value, placeholder string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<label class="field"><span>%s</span><input type="text" name="%s" value="%s" placeholder="%s"></label>`,
			templ.EscapeString(label),
			templ.EscapeString(name),
			templ.EscapeString(value),
			templ.EscapeString(placeholder),
		)
		return err
	})
}

// Select renders a labelled drop-down with selected marked.
func Select(label, name, selected string, options []Option) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<label class="field"><span>%s</span><select name="%s">`,
			templ.EscapeString(label), templ.EscapeString(name))
		for _, opt := range options {
			fmt.Fprintf(&b, `<option value="%s"%s>%s</option>`,
				templ.EscapeString(opt.Value),
				optionState(opt.Value, selected),
				templ.EscapeString(opt.Label),
			)
		}
		b.WriteString(`</select></label>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func optionState(value, selected string) string {
	if value == selected {
		return " selected"
	}
	return ""
}

// Preview renders the live card image.
func Preview(src, alt string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<figure class="preview" id="preview"><img src="%s" alt="%s" width="1200" height="630"></figure>`,
			templ.EscapeString(src), templ.EscapeString(alt))
		return err
	})
}

// ParamsTable renders the query parameter reference.
func ParamsTable(rows []ParamRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<table><thead><tr><th>Parameter</th><th>Default</th><th>Description</th></tr></thead><tbody>`)
		for _, row := range rows {
			def := row.Default
			if def == "" {
				def = "-"
			}
			fmt.Fprintf(&b, `<tr><td><code>%s</code></td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(row.Name),
				templ.EscapeString(def),
				templ.EscapeString(row.Description),
			)
		}
		b.WriteString(`</tbody></table>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// CodeBlock renders preformatted text.
func CodeBlock(code string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<pre><code>`+templ.EscapeString(code)+`</code></pre>`)
		return err
	})
}
