package menu

import (
	"fmt"
	"io"
	"time"
)

// FetchEvent records metadata about a single menu fetch.
type FetchEvent struct {
	URL       string
	LatencyMs int64
	Rows      int
	Accepted  int
	Success   bool
	ErrorCode string
	Stale     bool
}

// Observer receives events about menu fetches for logging.
type Observer interface {
	OnFetchComplete(event FetchEvent)
}

// LogObserver writes fetch events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnFetchComplete(event FetchEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	if event.Stale {
		status += " stale"
	}
	fmt.Fprintf(o.w, "[%s] menu_fetch url=%s latency_ms=%d rows=%d accepted=%d status=%s\n",
		ts, event.URL, event.LatencyMs, event.Rows, event.Accepted, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnFetchComplete(FetchEvent) {}
