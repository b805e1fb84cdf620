package handlers

import (
	"net/http"
	"net/url"

	"ogcard/internal/card"
	applog "ogcard/internal/log"
	"ogcard/internal/views/components"
	"ogcard/internal/views/pages"
)

const sessionPlaygroundKey = "playground:query"

// Docs serves the playground page at "/". Submitted values are remembered in
// the session so a bare visit restores the last card.
func Docs(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet, http.MethodHead:
	default:
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	req := playgroundRequest(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if isHTMX(r) {
		if err := components.Preview(pages.ImageURL("", req), "Card preview").Render(r.Context(), w); err != nil {
			applog.Error(r.Context(), "failed to render preview fragment", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	data := pages.DocsData{Request: req, Origin: requestOrigin(r)}
	if err := pages.Docs(data).Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render docs page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func playgroundRequest(r *http.Request) card.RenderRequest {
	query := r.URL.Query()
	if len(query) > 0 {
		req := card.Resolve(query)
		if sessionManager != nil {
			sessionManager.Put(r.Context(), sessionPlaygroundKey, encodeValues(req))
		}
		return req
	}

	if sessionManager != nil {
		if saved := sessionManager.GetString(r.Context(), sessionPlaygroundKey); saved != "" {
			values, err := url.ParseQuery(saved)
			if err == nil {
				return card.Resolve(values)
			}
			applog.Debug(r.Context(), "discarding unreadable playground session", "error", err)
		}
	}
	return card.Resolve(nil)
}

func encodeValues(req card.RenderRequest) string {
	values := url.Values{}
	for key, value := range req.Values() {
		values.Set(key, value)
	}
	return values.Encode()
}

func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	if r.Host == "" {
		return ""
	}
	return scheme + "://" + r.Host
}
