package search

import "errors"

var (
	ErrDisabled     = errors.New("search: index is disabled")
	ErrIndexFailed  = errors.New("search: failed to index document")
	ErrSearchFailed = errors.New("search: query failed")
)
