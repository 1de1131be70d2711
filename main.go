package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"diamonddash/adapters/tabular"
	"diamonddash/internal"
	"diamonddash/internal/config"
	"diamonddash/internal/dashboard"
	"diamonddash/internal/metrics"
	"diamonddash/ui"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.DefaultLogger.With("main")

	// The dataset is read once; a missing or malformed file aborts startup
	table, err := tabular.NewDataReader(appConfig.Data.File).ReadTable()
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	metrics.SetDatasetRows(table.RowCount())

	dash, err := dashboard.New(table, dashboard.Options{
		Title:         dashboard.DefaultOptions().Title,
		DefaultColumn: appConfig.Dashboard.DefaultColumn,
		TablePageSize: appConfig.Dashboard.TablePageSize,
	})
	if err != nil {
		log.Fatalf("Failed to build dashboard: %v", err)
	}

	server, err := ui.NewServer(dash, ui.Config{
		GinMode: appConfig.Server.GinMode,
		Debug:   appConfig.Debug(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	servers := []*http.Server{{
		Addr:              ":" + appConfig.Server.Port,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}}
	if appConfig.Metrics.Enabled {
		servers = append(servers, &http.Server{
			Addr:              ":" + appConfig.Metrics.Port,
			Handler:           metrics.NewOpsRouter(),
			ReadHeaderTimeout: 10 * time.Second,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			logger.Info("Listening on http://localhost%s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.Server.ShutdownTimeout)
		defer cancel()
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("Shutdown of %s failed: %v", srv.Addr, err)
			}
		}
		return nil
	})

	logger.Info("Serving %s (%d rows) with default column %s", table.Source(), table.RowCount(), dash.DefaultColumn())
	if err := g.Wait(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
