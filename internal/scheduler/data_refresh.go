// Package scheduler runs the periodic background jobs of the dashboard.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/yes-weigh/yesbheem-sub001/infrastructure/integrator/pincode"
	"github.com/yes-weigh/yesbheem-sub001/internal/config"
	"github.com/yes-weigh/yesbheem-sub001/internal/domain"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/dealerstore"
)

// DataRefreshConfig holds the schedule settings for the refresh job.
type DataRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DataRefreshService periodically rebuilds the merged dealer view from the
// backing store and resolves districts for pincodes the cache has not seen
// yet.
type DataRefreshService struct {
	scheduler *gocron.Scheduler
	config    DataRefreshConfig

	store    dealerstore.Store
	resolver pincode.Resolver

	refreshRunning        bool
	refreshMutex          sync.Mutex
	lastRefreshStartedAt  time.Time
	lastRefreshFinishedAt time.Time
}

func NewDataRefreshService(
	store dealerstore.Store,
	resolver pincode.Resolver,
	appConfig *config.Config,
) *DataRefreshService {
	refreshConfig := DataRefreshConfig{
		CronSchedule: appConfig.DataRefresh.CronSchedule,
		Enabled:      appConfig.DataRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Data refresh scheduler configuration loaded")

	return &DataRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		store:     store,
		resolver:  resolver,
	}
}

// Start schedules the refresh job and stops it when the context is
// cancelled.
func (s *DataRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Data refresh disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Starting data refresh scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshAll(context.Background())
	})
	if err != nil {
		return fmt.Errorf("scheduling data refresh: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping data refresh scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshAll is one run of the job. Overlapping runs are skipped.
func (s *DataRefreshService) refreshAll(ctx context.Context) {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Data refresh already running, skipping")
		return
	}
	startTime := time.Now()
	s.refreshRunning = true
	s.lastRefreshStartedAt = startTime
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshRunning = false
		s.refreshMutex.Unlock()
	}()

	logrus.Info("Starting merged dealer data refresh")

	merged, err := s.store.GetMergedDealers(ctx, "", true)
	if err != nil {
		logrus.WithError(err).Error("Merged dealer refresh failed")
		return
	}

	resolved := s.resolveMissingDistricts(ctx, merged)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":           duration.String(),
		"dealers":            len(merged),
		"resolved_districts": resolved,
	}).Info("Merged dealer data refresh finished")

	s.refreshMutex.Lock()
	s.lastRefreshFinishedAt = time.Now()
	s.refreshMutex.Unlock()
}

// resolveMissingDistricts looks up the district for every dealer pincode the
// zip cache does not know yet and returns how many were resolved.
func (s *DataRefreshService) resolveMissingDistricts(ctx context.Context, merged []domain.MergedDealer) int {
	zipCache, err := s.store.GetZipCache(ctx)
	if err != nil {
		logrus.WithError(err).Error("Reading zip cache for district resolution failed")
		return 0
	}

	seen := make(map[string]struct{})
	missing := make([]string, 0)
	for _, dealer := range merged {
		zip := dealer.ZipHint()
		if zip == "" || dealer.District != "" {
			continue
		}
		if _, ok := zipCache[zip]; ok {
			continue
		}
		if _, ok := seen[zip]; ok {
			continue
		}
		seen[zip] = struct{}{}
		missing = append(missing, zip)
	}

	if len(missing) == 0 {
		return 0
	}

	logrus.WithField("pincodes", len(missing)).Info("Resolving districts for unknown pincodes")

	resolved, err := s.resolver.ResolveAll(ctx, missing)
	if err != nil {
		logrus.WithError(err).Warn("District resolution batch ended early")
	}

	if len(resolved) > 0 {
		// Resolved entries were persisted by the resolver; drop the stale
		// caches so the next read picks them up.
		s.store.InvalidateCache("zipCache")
		s.store.InvalidateCache("mergedDealers")
	}

	return len(resolved)
}

// TriggerManualRefresh starts a refresh outside the schedule.
func (s *DataRefreshService) TriggerManualRefresh() {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Info("Data refresh already running, ignoring manual trigger")
		return
	}
	s.refreshMutex.Unlock()

	logrus.Info("Starting manual data refresh")
	go s.refreshAll(context.Background())
}

// GetStatus reports the scheduler state for the health endpoint.
func (s *DataRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	startedAt := s.lastRefreshStartedAt
	finishedAt := s.lastRefreshFinishedAt
	s.refreshMutex.Unlock()

	return map[string]any{
		"refresh_enabled":          s.config.Enabled,
		"refresh_cron":             s.config.CronSchedule,
		"last_refresh_started_at":  startedAt,
		"last_refresh_finished_at": finishedAt,
	}
}
