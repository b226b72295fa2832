// Package httpserver runs the application HTTP server with graceful shutdown
// and provides liveness and readiness probe handlers.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	r.Get("/health/live", httpserver.LivenessHandler())
//	r.Get("/health/ready", httpserver.ReadinessHandler(log, cfg.ProbeTimeout,
//		httpserver.Probe{Name: "postgres", Check: pg.Healthcheck(pool)},
//	))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run returns when ctx is canceled or on SIGINT/SIGTERM, after in-flight
// requests finish or ShutdownTimeout elapses.
package httpserver
