package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/openexhibits/exhibits-admin/internal/activity"
	"github.com/openexhibits/exhibits-admin/internal/api"
	"github.com/openexhibits/exhibits-admin/internal/config"
	"github.com/openexhibits/exhibits-admin/internal/dashboard"
	"github.com/openexhibits/exhibits-admin/internal/db"
	"github.com/openexhibits/exhibits-admin/internal/server"
	"github.com/openexhibits/exhibits-admin/internal/session"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the admin dashboard server",
	Long:  `Starts the exhibits-admin dashboard: server-rendered forms for exhibits, headings, grid items, and timeline items, backed by the exhibits REST API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if servePort != 0 {
			cfg.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if verbose {
			fmt.Printf("backend=%s port=%d data_dir=%s\n", cfg.BackendURL, cfg.Port, cfg.DataDir)
		}

		database, err := db.Open(filepath.Join(cfg.DataDir, "admin.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		sessions := session.NewStore(database, time.Duration(cfg.SessionTTLHours)*time.Hour)
		if err := sessions.PurgeExpired(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not purge expired sessions: %v\n", err)
		}

		client := api.New(cfg.BackendURL)
		activityStore := activity.NewStore(database)

		srv := server.New(server.Config{Port: cfg.Port, AllowAll: cfg.AllowAllOrigins}, database)

		dash := dashboard.New(client, sessions, activityStore, int64(cfg.MaxUploadMB)<<20)
		dash.RegisterRoutes(srv.Router())

		// Graceful shutdown on SIGINT/SIGTERM.
		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-sigCh:
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "override the configured listen port")
	rootCmd.AddCommand(serveCmd)
}
