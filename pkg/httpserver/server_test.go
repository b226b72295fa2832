package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signaturecraft/pkg/httpserver"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServer_ServeAndCancel(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := httpserver.New(httpserver.Config{ShutdownTimeout: time.Second}, httpserver.WithLogger(discardLogger()))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, ln, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))
	}()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get("http://" + ln.Addr().String())
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "server did not stop")
	}
}

func TestServer_RunInvalidAddr(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.Config{Addr: "256.0.0.1:-1"}, httpserver.WithLogger(discardLogger()))
	err := srv.Run(context.Background(), http.NotFoundHandler())
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestServer_ShutdownBeforeRun(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.Config{})
	assert.NoError(t, srv.Shutdown(context.Background()))
}

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	httpserver.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	ok := httpserver.Probe{Name: "postgres", Check: func(context.Context) error { return nil }}
	failing := httpserver.Probe{Name: "redis", Check: func(context.Context) error { return errors.New("down") }}
	slow := httpserver.Probe{Name: "opensearch", Check: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}}

	tests := []struct {
		name       string
		probes     []httpserver.Probe
		wantStatus int
		wantChecks map[string]string
	}{
		{
			name:       "all healthy",
			probes:     []httpserver.Probe{ok},
			wantStatus: http.StatusOK,
			wantChecks: map[string]string{"postgres": "ok"},
		},
		{
			name:       "one failing",
			probes:     []httpserver.Probe{ok, failing},
			wantStatus: http.StatusServiceUnavailable,
			wantChecks: map[string]string{"postgres": "ok", "redis": "error"},
		},
		{
			name:       "timeout",
			probes:     []httpserver.Probe{slow},
			wantStatus: http.StatusServiceUnavailable,
			wantChecks: map[string]string{"opensearch": "error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			h := httpserver.ReadinessHandler(discardLogger(), 50*time.Millisecond, tt.probes...)
			h(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body struct {
				Status string            `json:"status"`
				Checks map[string]string `json:"checks"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantChecks, body.Checks)
		})
	}
}
