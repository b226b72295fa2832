package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarRequestHeader is set to "true" by the datastar client on every fetch.
	DataStarRequestHeader = "Datastar-Request"

	// DataStarAcceptHeader is the Accept value of SSE requests.
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam carries signals on GET requests.
	DataStarQueryParam = "datastar"
)

// Patch modes re-exported for modules that do not import datastar directly.
const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchReplace = datastar.ElementPatchModeReplace
	PatchRemove  = datastar.ElementPatchModeRemove
	PatchAppend  = datastar.ElementPatchModeAppend
	PatchPrepend = datastar.ElementPatchModePrepend
	PatchBefore  = datastar.ElementPatchModeBefore
	PatchAfter   = datastar.ElementPatchModeAfter
)

// IsDataStar reports whether the request was issued by the datastar client.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(DataStarRequestHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}

// WantsJSON reports whether the error response should use the JSON envelope:
// API paths and clients that accept JSON but not HTML.
func WantsJSON(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}
