package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"AuctionAgent/internal/config"
	"AuctionAgent/internal/recorder"
	"AuctionAgent/internal/relay"
	"AuctionAgent/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	_ = godotenv.Load()
	log.Println("[INFO] dashboard relay starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.ValidateRelay(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init recorder
	var rec recorder.SnapshotRecorder = recorder.NewNoopRecorder()
	if cfg.Database.SQLitePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.SQLitePath), 0o755); err != nil {
			log.Printf("[WARN] create database dir: %v", err)
		}
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		} else {
			rec = sr
		}
	}
	defer rec.Close()

	rs := relay.NewServer(rec)

	// Init scheduler
	sched := scheduler.NewScheduler(rs)
	if err := sched.RegisterAll(cfg.Relay.ChartCron, cfg.Relay.StatusCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.RefreshNow()
	sched.Start()
	defer sched.Stop()

	wsSrv := &http.Server{Addr: cfg.Relay.WSAddr, Handler: rs.WSHandler()}
	apiSrv := &http.Server{Addr: cfg.Relay.HTTPAddr, Handler: rs.APIHandler(), ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 2)
	for _, srv := range []*http.Server{wsSrv, apiSrv} {
		go func(srv *http.Server) {
			log.Printf("[INFO] listening on %s", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}(srv)
	}

	log.Println("[INFO] dashboard relay is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		log.Println("[INFO] shutdown signal received, stopping...")
	case err := <-errCh:
		log.Printf("[ERROR] server: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, srv := range []*http.Server{wsSrv, apiSrv} {
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("[WARN] shutdown %s: %v", srv.Addr, err)
		}
	}
	log.Println("[INFO] dashboard relay stopped")
}
