package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"techexpo.dev/landing/internal/app"
	"techexpo.dev/landing/internal/appconf"
	"techexpo.dev/landing/internal/docstore"
	"techexpo.dev/landing/internal/logging"
	"techexpo.dev/landing/internal/webui"
)

func main() {
	cfg, err := appconf.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err = parseFlags(cfg, os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	logger := logging.NewStructuredLogger(os.Stdout, cfg.Level())
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logging.LogError(logger, "server stopped with error", err)
		os.Exit(1)
	}
}

// parseFlags lets command-line flags override the environment configuration.
func parseFlags(cfg appconf.Config, args []string, output io.Writer) (appconf.Config, error) {
	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.IntVar(&cfg.Port, "port", cfg.Port, "HTTP server port")
	fs.StringVar(&cfg.EnvName, "env", cfg.EnvName, "Environment (development|test|production)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.MongoURI, "mongo-uri", cfg.MongoURI, "MongoDB connection string")
	fs.DurationVar(&cfg.ConnectTimeout, "mongo-connect-timeout", cfg.ConnectTimeout, "Bound on the startup database connection attempt")
	fs.IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "Requests per second per client (negative disables)")
	fs.StringVar(&cfg.SignUpPath, "sign-up-path", cfg.SignUpPath, "Target of the Get Started button")
	fs.DurationVar(&cfg.ShutdownGrace, "shutdown-grace", cfg.ShutdownGrace, "Time allowed for in-flight requests on shutdown")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// run opens the database handle, serves until ctx is cancelled, then drains
// requests and closes the handle.
func run(ctx context.Context, cfg appconf.Config, logger *slog.Logger) error {
	// A failed attempt is logged by docstore; the page itself needs no
	// database, so the site keeps serving without a handle.
	application := &app.Application{
		Config: cfg,
		Logger: logger,
	}
	if store, err := docstore.Open(ctx, docstore.NewConfig(cfg.MongoURI, cfg.ConnectTimeout), logger); err == nil {
		application.Store = store
	}

	ui := webui.New(application)
	defer ui.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      ui.Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, application)
}

const disconnectTimeout = 5 * time.Second

// serve runs srv until ctx is cancelled or it fails. The document store is
// disconnected on the way out; a disconnect failure becomes the returned
// error unless serving already failed.
func serve(ctx context.Context, srv *http.Server, application *app.Application) (err error) {
	logger := application.Logger

	defer logging.HandleDeferredError(&err, func() error {
		closeCtx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
		defer cancel()
		return application.CloseStore(closeCtx)
	}, logger, "docstore_disconnect")

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", application.Config.Env().String())
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case listenErr := <-serveErr:
		if !errors.Is(listenErr, http.ErrServerClosed) {
			return listenErr
		}
	case <-ctx.Done():
	}

	start := time.Now()
	grace := application.Config.ShutdownGrace
	if grace <= 0 {
		grace = 15 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	err = srv.Shutdown(shutdownCtx)

	logging.LogOperation(logger, "server stopped", slog.Duration("duration", time.Since(start)))
	return err
}
