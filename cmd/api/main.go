// @title       Pet Hospitalization API
// @version     1.0
// @description Internación veterinaria: boxes, prescripciones, dosis programadas y checklist de cuidados.
// @BasePath    /
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-hospitalization/internal/adapters/directory"
	"pet-hospitalization/internal/adapters/notify/redisstream"
	pg "pet-hospitalization/internal/adapters/storage/postgres"
	"pet-hospitalization/internal/config"
	"pet-hospitalization/internal/domain/hospitalizations"
	"pet-hospitalization/internal/platform/logger"
	"pet-hospitalization/internal/platform/metrics"
	"pet-hospitalization/internal/router"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pet-hospitalization",
		Short: "Hospitalization treatment and medication scheduler",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and the late-item watcher",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the Postgres schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DBDSN == "" {
				return errors.New("DB_DSN is required for migrate")
			}

			db, err := pg.Open(cfg.DBDSN, dbPool(cfg))
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := pg.Migrate(ctx, db); err != nil {
				return err
			}
			fmt.Println("schema applied")
			return nil
		},
	}
}

func dbPool(cfg *config.Config) pg.Pool {
	return pg.Pool{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	}
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN, dbPool(cfg))
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		defer db.Close()

		if err := pg.Migrate(ctx, db); err != nil {
			return err
		}
		log.Info("postgres storage enabled", nil)
	} else {
		log.Warn("DB_DSN not set, using in-memory storage", nil)
	}

	opts := router.Options{
		Logger:    log,
		Metrics:   metrics.New(),
		DB:        db,
		Horizon:   cfg.ScheduleHorizon,
		LateGrace: cfg.LateGrace,
	}

	if cfg.DirectoryBaseURL != "" {
		dir, err := directory.New(cfg.DirectoryBaseURL, cfg.DirectoryAPIKey, cfg.DirectoryTimeout)
		if err != nil {
			return fmt.Errorf("directory client: %w", err)
		}
		opts.Directory = dir
	}

	var notifier hospitalizations.LateNotifier
	if cfg.RedisAddr != "" {
		n, err := redisstream.NewFromAddr(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.LateStream)
		if err != nil {
			return fmt.Errorf("redis notifier: %w", err)
		}
		defer n.Close()
		notifier = n
		log.Info("late notifications enabled", map[string]any{"stream": cfg.LateStream})
	}

	handler, svc := router.New(opts)
	watcher := hospitalizations.NewLateWatcher(svc, notifier)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return watcher.Run(gctx, cfg.WatchInterval)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down", nil)
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
