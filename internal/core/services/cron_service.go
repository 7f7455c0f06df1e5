package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// sessionPurgeTimeout bounds a single cleanup run
const sessionPurgeTimeout = 30 * time.Second

// CronService runs scheduled maintenance jobs
type CronService struct {
	cron *cron.Cron
	auth *AuthService
}

// NewCronService creates a cron service that purges expired sessions on schedule
func NewCronService(auth *AuthService, schedule string) (*CronService, error) {
	s := &CronService{
		cron: cron.New(),
		auth: auth,
	}

	if _, err := s.cron.AddFunc(schedule, s.purgeSessions); err != nil {
		return nil, fmt.Errorf("invalid session cleanup schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start launches the scheduler in the background
func (s *CronService) Start() {
	s.cron.Start()
	log.Println("🚀 CronService started")
}

// Stop stops the scheduler and waits for a running job to finish
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	log.Println("🛑 CronService stopped")
}

func (s *CronService) purgeSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), sessionPurgeTimeout)
	defer cancel()

	deleted, err := s.auth.PurgeExpiredSessions(ctx)
	if err != nil {
		log.Printf("❌ Session cleanup error: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("🧹 Session cleanup removed %d sessions", deleted)
	}
}
