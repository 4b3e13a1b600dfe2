package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"portfolio/analytics"
	"portfolio/gists"
	"portfolio/site"
	"portfolio/uploads"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	server, err := site.NewServer(site.Deps{
		Config:    appConfig,
		Store:     store,
		Uploads:   uploads.NewStore(appConfig.Uploads.Dir, appConfig.Uploads.MaxBytes),
		Gists:     gists.NewClient(appConfig.Gists.BaseURL, appConfig.Gists.Timeout, log),
		Analytics: analytics.MockReader{},
		Logger:    log,
	})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              appConfig.Addr(),
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Running on http://localhost%s", appConfig.Addr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Block until a signal is received or the server fails
	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("HTTP server shutdown failed")
		return err
	}
	return nil
}
