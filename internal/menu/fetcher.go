package menu

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ardi-the-water/denj/internal/domain"
)

// Fetcher downloads and parses the published menu sheet.
type Fetcher struct {
	cfg  Config
	http *http.Client
}

// NewFetcher creates a Fetcher with the given configuration.
func NewFetcher(cfg Config) *Fetcher {
	return &Fetcher{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// Result holds the outcome of a successful menu fetch.
type Result struct {
	Items []domain.MenuItem
	// Rows is the number of raw data rows in the body, header
	// excluded; rows that failed parsing are counted here but absent
	// from Items.
	Rows int
}

// Fetch performs a single GET against the menu sheet URL and parses
// the body. An empty URL fails with ErrNoSource without touching the
// network. A cache-defeating query parameter is appended so published
// sheets never serve a stale cached copy.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Result, error) {
	if url == "" {
		return nil, ErrNoSource
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(f.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	sep := "&"
	if !strings.Contains(url, "?") {
		sep = "?"
	}
	busted := url + sep + "_=" + strconv.FormatInt(time.Now().UnixMilli(), 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, busted, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrFetchFailed, err)
	}

	text := string(body)
	return &Result{Items: Parse(text), Rows: rawRows(text)}, nil
}

// Parse turns comma-delimited sheet text into menu items. The first
// line is assumed to be a header and discarded. A line is accepted
// only if it yields at least three fields with a non-empty name,
// a non-empty category, and a non-negative integer price; anything
// else is silently dropped.
func Parse(text string) []domain.MenuItem {
	lines := strings.Split(text, "\n")
	if len(lines) <= 1 {
		return nil
	}

	var items []domain.MenuItem
	for _, line := range lines[1:] {
		line = strings.TrimSuffix(line, "\r")
		fields := strings.Split(line, ",")
		if len(fields) < 3 {
			continue
		}
		name := strings.TrimSpace(fields[0])
		category := strings.TrimSpace(fields[1])
		if name == "" || category == "" {
			continue
		}
		price, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil || price < 0 {
			continue
		}
		items = append(items, domain.MenuItem{
			Category: category,
			Name:     name,
			Price:    price,
		})
	}
	return items
}

// rawRows counts the data rows in the body, header excluded. A
// trailing newline does not introduce a phantom row.
func rawRows(text string) int {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return 0
	}
	return len(strings.Split(text, "\n")) - 1
}
