package handler

import (
	"fmt"
	"net/http"
	"strings"
)

type contentResponse struct {
	status      int
	contentType string
	filename    string
	body        []byte
}

func (c contentResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", c.contentType)
	if c.filename != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", c.filename))
	}
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(c.status)
	_, err := w.Write(c.body)
	return err
}

// HTML writes an HTML string with status 200.
func HTML(body string) Response {
	return contentResponse{status: http.StatusOK, contentType: "text/html; charset=utf-8", body: []byte(body)}
}

// Text writes a plain text string with status 200.
func Text(body string) Response {
	return contentResponse{status: http.StatusOK, contentType: "text/plain; charset=utf-8", body: []byte(body)}
}

// Download writes body as an attachment named filename.
//
//	return handler.Download("jane-doe.vcf", "text/vcard; charset=utf-8", []byte(card))
func Download(filename, contentType string, body []byte) Response {
	return contentResponse{
		status:      http.StatusOK,
		contentType: contentType,
		filename:    strings.NewReplacer(`"`, "", "\r", "", "\n", "").Replace(filename),
		body:        body,
	}
}

type emptyResponse struct {
	status int
}

func (e emptyResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty creates a 204 No Content response.
func Empty() Response {
	return emptyResponse{status: http.StatusNoContent}
}

// EmptyWithStatus creates a response with the given status and no body.
func EmptyWithStatus(status int) Response {
	return emptyResponse{status: status}
}
