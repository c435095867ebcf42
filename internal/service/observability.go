package service

import (
	"fmt"
	"io"
	"time"
)

// PersistEvent records a failed read or write of a persistence slot.
// Slot failures are absorbed: the in-memory state stays authoritative
// for the session, so these events are the only trace left behind.
type PersistEvent struct {
	Slot string
	Op   string // "read" or "write"
	Err  string
}

// Observer receives persistence failure events for logging.
type Observer interface {
	OnPersistFailure(event PersistEvent)
}

// LogObserver writes persistence failures to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnPersistFailure(event PersistEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	fmt.Fprintf(o.w, "[%s] slot_%s_failed slot=%s err=%s\n", ts, event.Op, event.Slot, event.Err)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnPersistFailure(PersistEvent) {}
