package scheduler

import (
	"fmt"
	"log"

	"AuctionAgent/internal/relay"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the relay's periodic tasks.
type Scheduler struct {
	Cron  *cron.Cron
	Relay *relay.Server
}

// NewScheduler creates a new Scheduler.
func NewScheduler(rs *relay.Server) *Scheduler {
	return &Scheduler{
		Cron:  cron.New(cron.WithSeconds()),
		Relay: rs,
	}
}

// RegisterAll registers the chart refresh and status log tasks.
func (s *Scheduler) RegisterAll(chartCron, statusCron string) error {
	if _, err := s.Cron.AddFunc(chartCron, s.refreshCharts); err != nil {
		return fmt.Errorf("register chart task: %w", err)
	}
	if _, err := s.Cron.AddFunc(statusCron, s.Relay.LogStatus); err != nil {
		return fmt.Errorf("register status task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for running tasks.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RefreshNow renders the charts immediately (used at startup).
func (s *Scheduler) RefreshNow() {
	s.refreshCharts()
}

func (s *Scheduler) refreshCharts() {
	if err := s.Relay.RefreshCharts(); err != nil {
		log.Printf("[ERROR] refresh charts: %v", err)
	}
}
