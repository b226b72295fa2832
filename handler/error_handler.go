package handler

import (
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/signaturecraft/pkg/logger"
	"github.com/dmitrymomot/signaturecraft/pkg/markup"
	"github.com/dmitrymomot/signaturecraft/pkg/requestid"
)

// ErrorPageParams is the data of a full error page.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams is the data of a datastar error toast.
type ErrorToastParams struct {
	Message   string
	Type      string // "error" or "warning"
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler. Nil components fall back to
// DefaultErrorPage and DefaultErrorToast.
type ErrorHandlerConfig struct {
	ErrorPage   func(ErrorPageParams) templ.Component
	ErrorToast  func(ErrorToastParams) templ.Component
	ToastTarget string // default "#toasts"
}

// errorInfo is the classified form of an error.
type errorInfo struct {
	status  int
	message string
	detail  *ErrorDetail
}

func classifyError(err error) errorInfo {
	status, detail := errorToDetail(err)
	info := errorInfo{status: status, message: detail.Message, detail: detail}
	if ve, ok := AsValidationError(err); ok {
		info.message = formatValidationErrors(ve)
	}
	return info
}

func formatValidationErrors(ve ValidationError) string {
	if ve.IsEmpty() {
		return "Validation failed"
	}
	fields := make([]string, 0, len(ve))
	for field := range ve {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, field+": "+strings.Join(ve[field], ", "))
	}
	return strings.Join(messages, "; ")
}

func toastType(status int) string {
	if status < http.StatusInternalServerError {
		return "warning"
	}
	return "error"
}

// NewErrorHandler returns an ErrorHandler that logs the error and answers with
// the JSON envelope for API requests, a toast patch for datastar requests and
// an HTML error page otherwise.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ErrorPage == nil {
		cfg.ErrorPage = DefaultErrorPage
	}
	if cfg.ErrorToast == nil {
		cfg.ErrorToast = DefaultErrorToast
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toasts"
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		reqID := requestid.FromContext(r.Context())
		info := classifyError(err)

		level := slog.LevelError
		if info.status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.RequestID(reqID),
			logger.Error(err),
			slog.Int("status_code", info.status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		var resp Response
		switch {
		case IsDataStar(r):
			resp = Templ(cfg.ErrorToast(ErrorToastParams{
				Message:   info.message,
				Type:      toastType(info.status),
				RequestID: reqID,
			}), WithTarget(cfg.ToastTarget), WithPatchMode(PatchPrepend))
		case WantsJSON(r):
			resp = jsonResponse{status: info.status, body: JSONResponse{Error: info.detail}}
		default:
			resp = TemplWithStatus(info.status, cfg.ErrorPage(ErrorPageParams{
				Error:      info.message,
				StatusCode: info.status,
				RequestID:  reqID,
				RetryURL:   r.URL.Path,
			}))
		}

		if rerr := resp.Render(w, r); rerr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.RequestID(reqID),
				logger.Error(rerr),
				logger.Event("render_error"),
			)
		}
	}
}

// DefaultErrorPage renders a minimal standalone error document.
func DefaultErrorPage(p ErrorPageParams) templ.Component {
	title := strconv.Itoa(p.StatusCode) + " " + http.StatusText(p.StatusCode)
	body := markup.El("main",
		markup.El("h1", markup.Text(title)),
		markup.El("p", markup.Text(p.Error)),
		markup.If(p.RetryURL != "", markup.El("a", markup.Text("Try again")).Attr("href", p.RetryURL)),
		markup.If(p.RequestID != "", markup.El("p", markup.Text("Request ID: "+p.RequestID)).
			Css("color", "#64748b").
			Css("font-size", "12px")),
	).Css("font-family", "Arial, Helvetica, sans-serif")
	return markup.Component(markup.Document(title, body))
}

// DefaultErrorToast renders a dismissable toast element.
func DefaultErrorToast(p ErrorToastParams) templ.Component {
	color := "#b45309"
	if p.Type == "error" {
		color = "#b91c1c"
	}
	toast := markup.El("div", markup.Text(p.Message)).
		Attr("class", "toast toast-"+p.Type).
		Attr("role", "alert").
		Attr("data-on-click", "el.remove()").
		Css("color", color)
	if p.RequestID != "" {
		toast.Attr("data-request-id", p.RequestID)
	}
	return markup.Component(toast)
}
