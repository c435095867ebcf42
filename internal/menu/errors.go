package menu

import "errors"

var (
	// ErrNoSource indicates no menu sheet URL is configured; no
	// network call is attempted on this path.
	ErrNoSource = errors.New("menu source URL is not configured")

	// ErrFetchFailed indicates the menu sheet could not be fetched:
	// transport failure or a non-2xx response.
	ErrFetchFailed = errors.New("fetching menu failed")
)
