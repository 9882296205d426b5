package jobs

import (
	"context"
	"log"
	"time"

	"KabisaBizSuite/internal/cache"
	"KabisaBizSuite/internal/config"
	"KabisaBizSuite/internal/logger"
	"KabisaBizSuite/internal/serviceiface"

	"github.com/robfig/cron/v3"
)

// CronService keeps cached table snapshots fresh: every tick it refetches
// the tables pages have touched, so views pick up remote edits without a
// user-driven reload.
type CronService struct {
	cfg   map[string]interface{}
	cache *cache.TableCache
	cron  *cron.Cron
}

func NewCronService(cfg map[string]interface{}, tc *cache.TableCache) serviceiface.Service {
	return &CronService{cfg: cfg, cache: tc}
}

func (s *CronService) Name() string {
	return "jobs"
}

func (s *CronService) Start() error {
	schedule := config.DefaultRefreshSchedule
	timezone := config.DefaultTimeZone
	if s.cfg != nil {
		if v, ok := s.cfg["refresh_schedule"].(string); ok && v != "" {
			schedule = v
		}
		if v, ok := s.cfg["timezone"].(string); ok && v != "" {
			timezone = v
		}
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))
	_, err = c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
		defer cancel()
		s.cache.RefreshAll(ctx)
	})
	if err != nil {
		return err
	}
	c.Start()
	s.cron = c

	if logger.GlobalLogger != nil {
		logger.GlobalLogger.LogAudit("Cache refresh scheduler started: " + schedule)
	}
	log.Println("Jobs service started, cache refresh scheduled", schedule)
	return nil
}

func (s *CronService) Stop() error {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	log.Println("Jobs service stopped.")
	return nil
}
