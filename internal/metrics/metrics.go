// Package metrics keeps in-process render counters and exposes them in the
// Prometheus text format.
package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	applog "ogcard/internal/log"
)

var (
	renderTotal atomic.Uint64

	layoutMu     sync.Mutex
	layoutTotals = make(map[string]uint64)

	renderDuration = newHistogram([]float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25})
)

// ObserveRender records one rendered card and how long it took in milliseconds.
func ObserveRender(layout string, durationMs float64) {
	renderTotal.Add(1)

	layoutMu.Lock()
	layoutTotals[layout]++
	layoutMu.Unlock()

	if durationMs < 0 {
		durationMs = 0
	}
	renderDuration.Observe(durationMs)
}

// Handler serves the metrics page.
func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(Render())); err != nil {
			applog.Error(r.Context(), "failed to write metrics", "error", err)
		}
	})
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "og_render_total", "Total cards rendered", renderTotal.Load())
	writeLayoutCounters(&buf)
	writeHistogram(&buf, "og_render_duration_ms", "Card render duration in milliseconds", renderDuration.Snapshot())
	return buf.String()
}

func writeLayoutCounters(buf *bytes.Buffer) {
	layoutMu.Lock()
	names := make([]string, 0, len(layoutTotals))
	for name := range layoutTotals {
		names = append(names, name)
	}
	counts := make(map[string]uint64, len(layoutTotals))
	for name, count := range layoutTotals {
		counts[name] = count
	}
	layoutMu.Unlock()

	sort.Strings(names)
	const name = "og_render_layout_total"
	fmt.Fprintf(buf, "# HELP %s Cards rendered per layout\n", name)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	for _, layout := range names {
		fmt.Fprintf(buf, "%s{layout=%q} %d\n", name, layout, counts[layout])
	}
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// Observe counts value in the first bucket whose bound holds it.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			return
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
