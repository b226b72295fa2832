package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/signaturecraft/pkg/logger"
)

// Probe is a named dependency check.
type Probe struct {
	Name  string
	Check func(context.Context) error
}

type probeReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// LivenessHandler always reports ok while the process serves requests.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeReport(w, http.StatusOK, probeReport{Status: "ok"})
	}
}

// ReadinessHandler runs every probe concurrently, each bounded by timeout,
// and answers 503 when any of them fails.
func ReadinessHandler(log *slog.Logger, timeout time.Duration, probes ...Probe) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		report := probeReport{Status: "ok", Checks: make(map[string]string, len(probes))}
		var (
			mu sync.Mutex
			wg sync.WaitGroup
		)
		for _, p := range probes {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := p.Check(ctx)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					report.Status = "unavailable"
					report.Checks[p.Name] = "error"
					log.ErrorContext(ctx, "readiness check failed",
						logger.Component("health"),
						slog.String("probe", p.Name),
						logger.Error(err),
					)
					return
				}
				report.Checks[p.Name] = "ok"
			}()
		}
		wg.Wait()

		status := http.StatusOK
		if report.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		writeReport(w, status, report)
	}
}

func writeReport(w http.ResponseWriter, status int, report probeReport) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(report)
}
