package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/anirudhASAWA/Time-Motion-Study/internal/projects/service"
)

// Scheduler periodically rewrites the cached project listing so the
// cache stays warm between invalidations. Only started when Redis is
// configured.
type Scheduler struct {
	svc *service.ProjectService
	c   *cron.Cron
}

func NewScheduler(svc *service.ProjectService) *Scheduler {
	return &Scheduler{svc: svc}
}

// Start initializes cron tasks
func (s *Scheduler) Start() {
	s.c = cron.New()

	// hourly, on the hour
	_, err := s.c.AddFunc("0 * * * *", s.refreshSummaries)
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (summary cache refresh, hourly)")
	s.c.Start()
}

func (s *Scheduler) Stop() {
	if s.c != nil {
		s.c.Stop()
	}
}

func (s *Scheduler) refreshSummaries() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.svc.RefreshSummaries(ctx); err != nil {
		log.Printf("[warn] summary cache refresh failed: %v", err)
		return
	}
	log.Println("Summary cache refreshed at:", time.Now().Format(time.RFC1123))
}
