package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"ogcard/internal/card"
	applog "ogcard/internal/log"
	"ogcard/internal/metrics"
	"ogcard/internal/stats"
)

// OG renders the card described by the query string.
func OG(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
	default:
		w.Header().Set("Allow", "GET, HEAD, OPTIONS")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	req := card.Resolve(r.URL.Query())
	doc := card.Render(req)
	metrics.ObserveRender(string(req.Layout), float64(time.Since(start).Microseconds())/1000.0)

	applog.Debug(r.Context(), "card rendered",
		"theme", string(req.Theme),
		"layout", string(req.Layout),
		"bytes", len(doc),
	)

	if err := store.Record(r.Context(), req); err != nil && !errors.Is(err, stats.ErrUnavailable) {
		applog.Error(r.Context(), "failed to record render event", "error", err)
	}

	w.Header().Set("Content-Type", card.ContentType)
	w.Header().Set("Cache-Control", cacheControl)
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, doc); err != nil {
		applog.Error(r.Context(), "failed to write card", "error", err)
	}
}
