// Package httpserver runs an http.Handler until its context is cancelled and
// then shuts it down gracefully within a configured timeout.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
package httpserver
