package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Layout renders the HTML document shell around content. head is written
// inside <head> after the title and may be nil.
func Layout(title string, head templ.Component, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head>`+
			`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>`+templ.EscapeString(title)+`</title>`+
			`<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>`+stylesheet); err != nil {
			return err
		}
		if head != nil {
			if err := head.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</head><body><div class="`+bodyClass+`"><main class="`+mainClass+`">`); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></div></body></html>`)
		return err
	})
}

const (
	bodyClass = "page"
	mainClass = "page__main"
)

const stylesheet = `<style>
body{margin:0;font-family:system-ui,-apple-system,sans-serif;background:#0f0f23;color:#f8fafc}
.page{max-width:1100px;margin:0 auto;padding:48px 24px}
.page__main{display:grid;gap:32px}
.panel{background:#1a1a3e;border-radius:16px;padding:24px}
.field{display:grid;gap:6px;margin-bottom:14px}
.field input,.field select{padding:10px 12px;border-radius:8px;border:1px solid #334155;background:#0d0d1f;color:inherit}
.preview img{width:100%;height:auto;border-radius:12px;border:1px solid #334155}
table{width:100%;border-collapse:collapse}
th,td{text-align:left;padding:8px;border-bottom:1px solid #334155;vertical-align:top}
code,pre{font-family:ui-monospace,monospace;font-size:13px}
pre{white-space:pre-wrap;word-break:break-all;background:#0d0d1f;padding:12px;border-radius:8px}
button{padding:10px 18px;border:0;border-radius:8px;background:#6366f1;color:#fff;font-weight:600;cursor:pointer}
</style>`
