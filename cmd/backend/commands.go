package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"userdesk/auth"
	"userdesk/checker"
	"userdesk/config"
	"userdesk/logger"
	"userdesk/server"
	"userdesk/ui"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
	"github.com/spf13/cobra"
)

const dbAttempts = 10

var cfg config.Config

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "userdesk",
		Short:         "User registration web app server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			if err := logger.SetLevel(cfg.LogLevel); err != nil {
				logger.Warn("ignoring LOG_LEVEL %q: %v", cfg.LogLevel, err)
			}
			return nil
		},
	}

	root.AddCommand(serveCmd(), migrateCmd())
	return root
}

func serveCmd() *cobra.Command {
	var (
		addr   string
		memory bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web app and the user API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = cfg.Addr
			}

			var store auth.Store
			if memory {
				logger.Warn("using in-memory user store, data is lost on exit")
				store = auth.NewMemoryStore()
			} else {
				db, err := auth.OpenDB(ctx, cfg.DB.DSN(), dbAttempts)
				if err != nil {
					return err
				}
				defer db.Close()
				if err := auth.Migrate(ctx, db); err != nil {
					return err
				}
				logger.Init(db)
				store = auth.NewSQLStore(db)
			}

			svc := auth.NewService(store, cfg.JWTSecret, cfg.TokenTTL)

			// Registered on the server too so prerendering resolves pages.
			ui.RegisterRoutes()
			e := server.New(svc, appHandler(), server.Options{SecureCookies: cfg.CookieSecure})

			errc := make(chan error, 1)
			go func() {
				logger.Info("Starting Userdesk on %s...", addr)
				errc <- e.Start(addr)
			}()

			select {
			case err := <-errc:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to ADDR)")
	cmd.Flags().BoolVar(&memory, "memory", false, "keep users in memory instead of MySQL")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := auth.OpenDB(ctx, cfg.DB.DSN(), dbAttempts)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := auth.Migrate(ctx, db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return nil
		},
	}
}

func appHandler() *app.Handler {
	return &app.Handler{
		Name:        "Userdesk",
		Description: "User registration and directory",
		Version:     checker.Version,
		RawHeaders: []string{
			`<link href="https://fonts.googleapis.com/css2?family=Roboto:wght@400;500;700&display=swap" rel="stylesheet">`,
			`<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Material+Symbols+Rounded:opsz,wght,FILL,GRAD@24,400,0,0" />`,
		},
		LoadingLabel: "",
		Styles: []string{
			"/web/app.css",
		},
	}
}
