package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	adapterHTTP "github.com/comitanigiacomo/kanso-habit-grid/internal/adapters/handler/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default)",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		log.Printf("Critical: %v", err)
		return err
	}
	defer a.Close()

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		TrackerHandler:  adapterHTTP.NewTrackerHandler(a.tracker),
		DB:              a.db,
		Redis:           a.rdb,
		RateLimit:       a.cfg.RateLimit,
		RateLimitWindow: a.cfg.RateLimitWindow,
		StartTime:       startTime,
	})

	srv := &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Kanso habit grid running on http://localhost:%s (%d habits)", a.cfg.Port, a.catalog.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		log.Printf("Critical server error: %v", err)
		return err
	case <-ctx.Done():
	}

	log.Println("Stop signal received. Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown error: %v", err)
		return err
	}

	log.Println("Server stopped gracefully.")
	return nil
}
