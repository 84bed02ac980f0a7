package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/andrewpaige1/flashdeck/config"
	"github.com/andrewpaige1/flashdeck/handlers"
	"github.com/andrewpaige1/flashdeck/middleware"
	"github.com/andrewpaige1/flashdeck/store"
)

var (
	servePort int
	serveDB   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the flashcard collection service",
	RunE: func(cmd *cobra.Command, args []string) error {
		env := config.Load()
		if cmd.Flags().Changed("port") {
			env.Port = servePort
		}
		if cmd.Flags().Changed("db") {
			env.DatabaseURL = serveDB
		}

		logger := config.NewLogger(env, os.Stdout)
		slog.SetDefault(logger)

		db, err := config.Connect(env.DatabaseURL)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		handler := handlers.NewFlashcardHandler(store.NewFlashcardStore(db), logger)
		mux := handlers.NewRouter(handler)

		corsHandler := cors.New(cors.Options{
			AllowedOrigins: env.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "X-Request-ID", "Accept", "Origin"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         86400,
		}).Handler(middleware.WithRequestLogging(logger, mux))

		server := &http.Server{
			Addr:              fmt.Sprintf("0.0.0.0:%d", env.Port),
			Handler:           corsHandler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("listening", "addr", server.Addr, "development", env.IsDevelopment)
			errCh <- server.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server closed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", config.DefaultPort, "Port to listen on (overrides PORT)")
	serveCmd.Flags().StringVarP(&serveDB, "db", "d", config.DefaultDBURL, "Database URL or SQLite path (overrides DB_URL)")
}
