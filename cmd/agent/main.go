package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/profile"

	"AuctionAgent/internal/collector"
	"AuctionAgent/internal/config"
	"AuctionAgent/internal/gameclient"
	"AuctionAgent/internal/model"
	"AuctionAgent/internal/notifier"
	"AuctionAgent/internal/recorder"
	"AuctionAgent/internal/strategy"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	_ = godotenv.Load()
	log.Println("[INFO] AuctionAgent starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.ValidateAgent(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	switch cfg.Agent.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.Agent.LogDir), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(cfg.Agent.LogDir), profile.NoShutdownHook).Stop()
	}

	// Init round log
	var rec recorder.RoundRecorder
	fr, err := recorder.NewFileRecorder(cfg.Agent.LogDir, time.Now())
	if err != nil {
		log.Printf("[WARN] init round log failed, using noop: %v", err)
		rec = recorder.NewNoopRecorder()
	} else {
		log.Printf("[INFO] round log: %s", fr.Path)
		rec = fr
	}

	alloc := strategy.NewAllocator(cfg.Strategy, rec)
	alloc.Debug = cfg.Agent.Debug

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("[INFO] shutdown signal received, stopping...")
		cancel()
	}()

	// Init dashboard publisher
	var queue *notifier.Queue
	if cfg.Dashboard.PublishURL != "" {
		pub := notifier.NewWSPublisher(cfg.Dashboard.PublishURL)
		defer pub.Close()
		queue = notifier.NewQueue(pub, 16)
		go queue.Run(ctx)
		log.Printf("[INFO] publishing snapshots to %s", cfg.Dashboard.PublishURL)
	}

	client := gameclient.NewClient(cfg.GameURL(), cfg.Game.AgentName)
	client.OnRound = func(in *model.RoundInput, d *model.Decision) {
		log.Printf("[INFO] %s", notifier.FormatRoundReport(in.Round, in.Self(), d,
			alloc.Tracker.Wins, alloc.Tracker.ConsecutiveLosses))
		if queue == nil {
			return
		}
		if err := queue.Enqueue(collector.Collect(in, d, time.Now())); err != nil {
			log.Printf("[WARN] skip snapshot for round %d: %v", in.Round, err)
		}
	}

	if err := client.Run(ctx, alloc); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("[ERROR] game: %v", err)
	}
	log.Println("[INFO] AuctionAgent stopped")
}
