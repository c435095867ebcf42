package menu

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ardi-the-water/denj/internal/domain"
	"github.com/google/uuid"
)

// Loader owns the current menu and its load state. Reloads may be
// issued while an earlier fetch is still in flight; only the most
// recently issued reload is allowed to publish its result, so a slow
// response for a superseded URL can never overwrite newer state.
type Loader struct {
	fetcher  *Fetcher
	observer Observer

	mu          sync.Mutex
	items       []domain.MenuItem
	loading     bool
	lastErr     error
	activeToken string
}

// NewLoader creates a Loader around the given Fetcher.
func NewLoader(fetcher *Fetcher, observer Observer) *Loader {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Loader{fetcher: fetcher, observer: observer}
}

// Reload fetches the menu from url and replaces the current entries on
// success. On ErrNoSource the entries are cleared; on a fetch failure
// the previous entries are kept. Blocks until the fetch resolves or is
// superseded; the returned error reflects this reload only.
func (l *Loader) Reload(ctx context.Context, url string) error {
	token := uuid.New().String()

	l.mu.Lock()
	l.activeToken = token
	l.loading = true
	l.lastErr = nil
	l.mu.Unlock()

	start := time.Now()
	result, err := l.fetcher.Fetch(ctx, url)
	latency := time.Since(start).Milliseconds()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.activeToken != token {
		// A newer reload was issued while this one was in flight;
		// its result, not ours, owns the state.
		l.observer.OnFetchComplete(FetchEvent{URL: url, LatencyMs: latency, Stale: true, Success: err == nil})
		return err
	}
	l.loading = false

	if err != nil {
		l.lastErr = err
		if errors.Is(err, ErrNoSource) {
			l.items = nil
		}
		l.observer.OnFetchComplete(FetchEvent{URL: url, LatencyMs: latency, ErrorCode: errorCode(err)})
		return err
	}

	l.items = result.Items
	l.observer.OnFetchComplete(FetchEvent{
		URL:       url,
		LatencyMs: latency,
		Rows:      result.Rows,
		Accepted:  len(result.Items),
		Success:   true,
	})
	return nil
}

// Items returns the current menu entries.
func (l *Loader) Items() []domain.MenuItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.MenuItem, len(l.items))
	copy(out, l.items)
	return out
}

// Loading reports whether a reload is in flight.
func (l *Loader) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Err returns the error of the last resolved reload, or nil.
func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoSource):
		return "no_source"
	default:
		return "fetch_failed"
	}
}

// GroupByCategory groups items by category, preserving first-seen
// category order and item order within each category.
func GroupByCategory(items []domain.MenuItem) ([]string, map[string][]domain.MenuItem) {
	var order []string
	groups := make(map[string][]domain.MenuItem)
	for _, it := range items {
		if _, ok := groups[it.Category]; !ok {
			order = append(order, it.Category)
		}
		groups[it.Category] = append(groups[it.Category], it)
	}
	return order, groups
}

// Filter returns the items whose name contains the query,
// case-insensitively. An empty query returns all items.
func Filter(items []domain.MenuItem, query string) []domain.MenuItem {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}
	var out []domain.MenuItem
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), query) {
			out = append(out, it)
		}
	}
	return out
}

// SortedCategories returns the category names of items in lexical
// order, for stable non-interactive listings.
func SortedCategories(items []domain.MenuItem) []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	sort.Strings(out)
	return out
}
