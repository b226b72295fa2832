package handler

import (
	"net/http"
	"net/url"

	"github.com/starfederation/datastar-go/datastar"
)

type redirectResponse struct {
	url  string
	code int
}

// Render redirects regular requests and asks datastar clients to navigate.
func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	if IsDataStar(req) {
		return datastar.NewSSE(w, req).Redirect(r.url)
	}
	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect creates a 303 See Other redirect.
//
//	return handler.Redirect("/builder?signature=" + sig.ID.String())
func Redirect(url string) Response {
	return redirectResponse{url: url, code: http.StatusSeeOther}
}

// RedirectWithCode creates a redirect with a specific 3xx status code.
func RedirectWithCode(url string, code int) Response {
	return redirectResponse{url: url, code: code}
}

type redirectBackResponse struct {
	fallback string
}

func (r redirectBackResponse) Render(w http.ResponseWriter, req *http.Request) error {
	target := r.fallback
	if ref := req.Header.Get("Referer"); ref != "" && isSameHost(ref, req) {
		target = ref
	}
	return redirectResponse{url: target, code: http.StatusSeeOther}.Render(w, req)
}

// RedirectBack redirects to the Referer when it points to the same host and to
// fallback otherwise.
func RedirectBack(fallback string) Response {
	return redirectBackResponse{fallback: fallback}
}

func isSameHost(raw string, r *http.Request) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Host == "" || u.Host == r.Host
}

// SafeRedirectPath returns next when it is a local absolute path and fallback
// otherwise. Use it for user supplied "next" parameters.
func SafeRedirectPath(next, fallback string) string {
	if next == "" || next[0] != '/' || (len(next) > 1 && (next[1] == '/' || next[1] == '\\')) {
		return fallback
	}
	u, err := url.Parse(next)
	if err != nil || u.Host != "" || u.Scheme != "" {
		return fallback
	}
	return next
}
