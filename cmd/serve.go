package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mcaralp/esde-steam-manager/internal/handlers"
	"github.com/mcaralp/esde-steam-manager/internal/service"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON API for a catalog frontend",
		Long: `Exposes the catalog operations over HTTP for a UI shell: folder
management, catalog listing and commit, store search, and app details.`,
		Example: `  # Start server on default port 8888
  esde-steam-manager serve

  # Start server on custom port
  esde-steam-manager serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service.New()
			if err != nil {
				return err
			}
			handler := handlers.New(svc)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/folders", handler.HandleFolders)
			mux.HandleFunc("/api/catalog", handler.HandleCatalog)
			mux.HandleFunc("/api/search", handler.HandleSearch)
			mux.HandleFunc("/api/apps/", handler.HandleAppDetail)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Catalog API available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")

	return cmd
}
