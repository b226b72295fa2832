// Package logo accepts logo uploads and returns them as a data URI suitable
// for ContactRecord.LogoData.
package logo

import (
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signaturecraft/binder"
	"github.com/dmitrymomot/signaturecraft/handler"
	"github.com/dmitrymomot/signaturecraft/pkg/file"
	"github.com/dmitrymomot/signaturecraft/pkg/logger"
	"github.com/dmitrymomot/signaturecraft/pkg/ratelimiter"
	"github.com/dmitrymomot/signaturecraft/svc/auth"
	"github.com/dmitrymomot/signaturecraft/svc/signature"
)

// DefaultMaxBytes limits uploads when no limit is configured. Larger files
// would not fit ContactRecord.LogoData once encoded.
const DefaultMaxBytes int64 = signature.MaxLogoBytes

// multipartOverhead is the room left for form boundaries and headers.
const multipartOverhead = 64 << 10

// Module serves POST /api/logo.
type Module struct {
	storage  file.Storage
	maxBytes int64
	limiter  ratelimiter.RateLimiter
	log      *slog.Logger
	errors   handler.ErrorHandler[handler.Context]
}

// Option configures the module.
type Option func(*Module)

// WithMaxBytes sets the largest accepted file, at most DefaultMaxBytes.
func WithMaxBytes(n int64) Option {
	return func(m *Module) {
		if n > 0 {
			m.maxBytes = min(n, DefaultMaxBytes)
		}
	}
}

// WithRateLimiter limits uploads per user.
func WithRateLimiter(l ratelimiter.RateLimiter) Option {
	return func(m *Module) {
		m.limiter = l
	}
}

// WithLogger sets the module logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *Module) {
		m.log = log
	}
}

// New creates the module.
func New(storage file.Storage, opts ...Option) *Module {
	m := &Module{storage: storage, maxBytes: DefaultMaxBytes, log: slog.Default()}
	for _, opt := range opts {
		opt(m)
	}
	m.errors = handler.NewErrorHandler(m.log, handler.ErrorHandlerConfig{})
	return m
}

// Upload is the response of a successful upload.
type Upload struct {
	file.Object
	DataURI string `json:"dataUri"`
}

type uploadRequest struct {
	Logo *multipart.FileHeader `file:"logo"`
}

// Handle returns the upload handler.
func (m *Module) Handle() http.Handler {
	var h http.Handler = handler.Wrap(m.upload,
		handler.WithBinders[handler.Context, uploadRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, uploadRequest](m.errors),
	)
	if m.limiter != nil {
		h = ratelimiter.Middleware(m.limiter,
			ratelimiter.Composite(ratelimiter.Prefix("logo"), userKey),
			ratelimiter.WithLogger(m.log),
		)(h)
	}

	limit := m.maxBytes + multipartOverhead
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > limit {
			_ = handler.JSONError(handler.ErrRequestTooLarge).Render(w, r)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		h.ServeHTTP(w, r)
	})
}

func (m *Module) upload(ctx handler.Context, req uploadRequest) handler.Response {
	userID, err := auth.CurrentUserID(ctx)
	if err != nil {
		return m.fail(ctx, err)
	}
	if req.Logo == nil {
		return m.fail(ctx, handler.ValidationError{"logo": {"field is required"}})
	}

	data, err := binder.ReadFile(req.Logo, m.maxBytes)
	if err != nil {
		return m.fail(ctx, err)
	}
	mimeType, ext, err := file.DetectImage(data)
	if err != nil {
		return m.fail(ctx, err)
	}

	key := "logos/" + userID.String() + "/" + uuid.NewString() + ext
	obj, err := m.storage.Put(ctx, key, mimeType, data)
	if err != nil {
		return m.fail(ctx, err)
	}

	m.log.InfoContext(ctx, "logo uploaded",
		logger.Component("logo"),
		logger.UserID(userID),
		slog.String("key", obj.Key),
		slog.Int64("size", obj.Size),
	)
	return handler.JSON(Upload{Object: *obj, DataURI: file.DataURI(mimeType, data)},
		handler.WithJSONStatus(http.StatusCreated))
}

func (m *Module) fail(ctx handler.Context, err error) handler.Response {
	mapped := handler.MapError(err,
		handler.ErrorRule{Target: auth.ErrUnauthenticated, As: handler.ErrUnauthorized},
		handler.ErrorRule{Target: file.ErrNotAnImage, As: handler.ErrUnsupportedMedia},
		handler.ErrorRule{Target: file.ErrEmptyContent, As: handler.ValidationError{"logo": {"file is empty"}}},
		handler.ErrorRule{Target: binder.ErrFileTooLarge, As: handler.ErrRequestTooLarge},
	)
	if handler.StatusCode(mapped) >= http.StatusInternalServerError {
		m.log.ErrorContext(ctx, "logo upload failed", logger.Component("logo"), logger.Error(err))
	}
	return handler.JSONError(mapped)
}

func userKey(r *http.Request) string {
	if id, ok := auth.UserIDFromContext(r.Context()); ok {
		return id.String()
	}
	return ""
}
