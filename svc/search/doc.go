// Package search indexes signatures for full-text lookup.
//
// OpenSearch writes one document per signature and answers multi_match
// queries restricted to the owner. Noop stands in when search is disabled;
// callers then narrow the repository list with Filter.
package search
