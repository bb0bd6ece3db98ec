// Package dealerstore is the caching data layer between the HTTP handlers
// and the backing repositories. It owns the merged dealer views, coalesces
// concurrent refreshes and applies override writes optimistically so the
// dashboard updates before the database round trip completes.
package dealerstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yes-weigh/yesbheem-sub001/infrastructure/repository"
	"github.com/yes-weigh/yesbheem-sub001/internal/config"
	"github.com/yes-weigh/yesbheem-sub001/internal/domain"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/merging"
	"github.com/yes-weigh/yesbheem-sub001/pkg/log"
	"github.com/yes-weigh/yesbheem-sub001/pkg/utils"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	mergedCachePrefix    = "mergedDealers_"
	aggregatedReportID   = "aggregated"
	cacheKeyKPI          = "kpiData"
	cacheKeyZipCache     = "zipCache"
	cacheKeySettings     = "generalSettings"
	cacheKeyDeactivated  = "deactivatedDealers"
	cacheKeyOverrides    = "dealerOverrides"
	mergedCacheNamespace = "mergedDealers"

	// TopicDealers receives a notification whenever merged dealer data
	// changes.
	TopicDealers = "dealers"
)

// Store is the read/write surface the handlers and schedulers consume.
type Store interface {
	GetMergedDealers(ctx context.Context, reportID string, forceRefresh bool) ([]domain.MergedDealer, error)
	GetOverrides(ctx context.Context) (map[string]domain.DealerOverride, error)
	GetDeactivatedDealers(ctx context.Context) ([]string, error)
	GetKPIData(ctx context.Context) (domain.KPIData, error)
	GetZipCache(ctx context.Context) (map[string]string, error)
	GetGeneralSettings(ctx context.Context) (domain.GeneralSettings, error)

	UpdateOverride(ctx context.Context, dealerName string, override domain.DealerOverride) error
	RevertOverride(ctx context.Context, dealerName string) error
	DeactivateDealer(ctx context.Context, dealerName string) error
	ReactivateDealer(ctx context.Context, dealerName string) error

	Subscribe(topic string, fn func()) func()
	InvalidateCache(key string)
	ClearAllCaches()
}

type service struct {
	reports      repository.ReportRepository
	overrides    repository.OverrideRepository
	deactivation repository.DeactivationRepository
	kpi          repository.KPIRepository
	settings     repository.SettingsRepository
	merger       merging.Merger

	cache *memoryCache
	group singleflight.Group

	mu          sync.Mutex
	subscribers map[string]map[string]func()
}

func NewService(
	cfg *config.Config,
	reports repository.ReportRepository,
	overrides repository.OverrideRepository,
	deactivation repository.DeactivationRepository,
	kpi repository.KPIRepository,
	settings repository.SettingsRepository,
	merger merging.Merger,
) Store {
	return &service{
		reports:      reports,
		overrides:    overrides,
		deactivation: deactivation,
		kpi:          kpi,
		settings:     settings,
		merger:       merger,
		cache:        newMemoryCache(cfg.Cache.TTL),
		subscribers:  make(map[string]map[string]func()),
	}
}

func mergedCacheKey(reportID string) string {
	if reportID == "" {
		return mergedCachePrefix + aggregatedReportID
	}
	return mergedCachePrefix + reportID
}

// GetMergedDealers returns the merged view for one report, or for every
// stored report combined when reportID is empty. Concurrent callers for the
// same key share a single backing-store read.
func (s *service) GetMergedDealers(ctx context.Context, reportID string, forceRefresh bool) ([]domain.MergedDealer, error) {
	key := mergedCacheKey(reportID)

	if forceRefresh {
		s.cache.Delete(key)
	} else if cached, ok := s.cache.Get(key); ok {
		return cached.([]domain.MergedDealer), nil
	}

	result, err, _ := s.group.Do(key, func() (any, error) {
		return s.loadMergedDealers(ctx, reportID, key)
	})
	if err != nil {
		return nil, err
	}

	return result.([]domain.MergedDealer), nil
}

// loadMergedDealers fetches the three reconciliation inputs in parallel and
// runs the merge pipeline. Every completed load notifies the dealers topic;
// cache hits do not.
func (s *service) loadMergedDealers(ctx context.Context, reportID, cacheKey string) ([]domain.MergedDealer, error) {
	var (
		report      []domain.Dealer
		overrides   map[string]domain.DealerOverride
		deactivated []string
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if reportID == "" {
			report, err = s.reports.GetAggregatedReport(gctx)
		} else {
			report, err = s.reports.GetReport(gctx, reportID)
		}
		return err
	})

	g.Go(func() error {
		var err error
		overrides, err = s.GetOverrides(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		deactivated, err = s.GetDeactivatedDealers(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading merge inputs: %w", err)
	}

	merged := s.merger.Merge(report, overrides, deactivated)
	s.cache.Set(cacheKey, merged)
	s.notify(TopicDealers)

	log.ForContext(ctx).WithFields(log.Fields{
		"report_id": reportID,
		"dealers":   len(merged),
	}).Debug("merged dealer view refreshed")

	return merged, nil
}

func (s *service) GetOverrides(ctx context.Context) (map[string]domain.DealerOverride, error) {
	if cached, ok := s.cache.Get(cacheKeyOverrides); ok {
		return cached.(map[string]domain.DealerOverride), nil
	}

	result, err, _ := s.group.Do(cacheKeyOverrides, func() (any, error) {
		overrides, err := s.overrides.GetOverrides(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.Set(cacheKeyOverrides, overrides)
		return overrides, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(map[string]domain.DealerOverride), nil
}

func (s *service) GetDeactivatedDealers(ctx context.Context) ([]string, error) {
	if cached, ok := s.cache.Get(cacheKeyDeactivated); ok {
		return cached.([]string), nil
	}

	result, err, _ := s.group.Do(cacheKeyDeactivated, func() (any, error) {
		names, err := s.deactivation.GetDeactivatedList(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.Set(cacheKeyDeactivated, names)
		return names, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]string), nil
}

func (s *service) GetKPIData(ctx context.Context) (domain.KPIData, error) {
	if cached, ok := s.cache.Get(cacheKeyKPI); ok {
		return cached.(domain.KPIData), nil
	}

	result, err, _ := s.group.Do(cacheKeyKPI, func() (any, error) {
		data, err := s.kpi.GetKPIData(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.Set(cacheKeyKPI, data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(domain.KPIData), nil
}

func (s *service) GetZipCache(ctx context.Context) (map[string]string, error) {
	if cached, ok := s.cache.Get(cacheKeyZipCache); ok {
		return cached.(map[string]string), nil
	}

	result, err, _ := s.group.Do(cacheKeyZipCache, func() (any, error) {
		zipCache, err := s.settings.GetZipCache(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.Set(cacheKeyZipCache, zipCache)
		return zipCache, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(map[string]string), nil
}

func (s *service) GetGeneralSettings(ctx context.Context) (domain.GeneralSettings, error) {
	if cached, ok := s.cache.Get(cacheKeySettings); ok {
		return cached.(domain.GeneralSettings), nil
	}

	result, err, _ := s.group.Do(cacheKeySettings, func() (any, error) {
		settings, err := s.settings.GetGeneralSettings(ctx)
		if err != nil {
			return domain.GeneralSettings{}, err
		}
		s.cache.Set(cacheKeySettings, settings)
		return settings, nil
	})
	if err != nil {
		return domain.GeneralSettings{}, err
	}

	return result.(domain.GeneralSettings), nil
}

// UpdateOverride applies the override to every cached merged view first,
// notifies subscribers, then persists. If persistence fails every merged
// cache is dropped so the next read restores the stored truth.
func (s *service) UpdateOverride(ctx context.Context, dealerName string, override domain.DealerOverride) error {
	if dealerName == "" {
		return fmt.Errorf("override requires a dealer name")
	}
	if override.IsEmpty() {
		return fmt.Errorf("override for %s has no fields", dealerName)
	}

	stored := s.patchCachedViews(dealerName, override)
	s.notify(TopicDealers)

	if err := s.overrides.SetOverride(ctx, dealerName, override); err != nil {
		s.cache.DeleteByPrefix(mergedCachePrefix)
		s.cache.Delete(cacheKeyOverrides)
		s.notify(TopicDealers)
		return fmt.Errorf("persisting override for %s: %w", dealerName, err)
	}

	// Keep the local override cache in sync with what was just written.
	if cached, ok := s.cache.Get(cacheKeyOverrides); ok {
		overrides := cloneOverrides(cached.(map[string]domain.DealerOverride))
		overrides[dealerName] = overrides[dealerName].Merge(override)
		s.cache.Set(cacheKeyOverrides, overrides)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"dealer":        dealerName,
		"patched_views": stored,
	}).Info("dealer override saved")

	return nil
}

// patchCachedViews rewrites the dealer's entry in every live merged view and
// returns how many views were touched.
func (s *service) patchCachedViews(dealerName string, override domain.DealerOverride) int {
	patched := 0

	for _, key := range s.cache.KeysByPrefix(mergedCachePrefix) {
		cached, ok := s.cache.Get(key)
		if !ok {
			continue
		}

		view := cached.([]domain.MergedDealer)
		next := make([]domain.MergedDealer, len(view))
		copy(next, view)

		for i := range next {
			if next[i].CustomerName != dealerName {
				continue
			}

			base := next[i].Dealer
			if next[i].HasOverride && next[i].OriginalData != nil {
				base = *next[i].OriginalData
			}
			snapshot := base.Clone()

			effective := override
			if cached, ok := s.cache.Get(cacheKeyOverrides); ok {
				if existing, found := cached.(map[string]domain.DealerOverride)[dealerName]; found {
					effective = existing.Merge(override)
				}
			}

			next[i].Dealer = effective.Apply(base)
			next[i].HasOverride = true
			next[i].OriginalData = &snapshot
			patched++
			break
		}

		s.cache.Set(key, next)
	}

	return patched
}

// RevertOverride removes the stored override and forces the merged views to
// rebuild from the backing store.
func (s *service) RevertOverride(ctx context.Context, dealerName string) error {
	if err := s.overrides.DeleteOverride(ctx, dealerName); err != nil {
		return fmt.Errorf("reverting override for %s: %w", dealerName, err)
	}

	if cached, ok := s.cache.Get(cacheKeyOverrides); ok {
		overrides := cloneOverrides(cached.(map[string]domain.DealerOverride))
		delete(overrides, dealerName)
		s.cache.Set(cacheKeyOverrides, overrides)
	}

	s.cache.DeleteByPrefix(mergedCachePrefix)
	s.notify(TopicDealers)

	log.ForContext(ctx).WithField("dealer", dealerName).Info("dealer override reverted")
	return nil
}

func (s *service) DeactivateDealer(ctx context.Context, dealerName string) error {
	names, err := s.GetDeactivatedDealers(ctx)
	if err != nil {
		return err
	}

	for _, name := range names {
		if name == dealerName {
			return nil
		}
	}

	next := make([]string, len(names), len(names)+1)
	copy(next, names)
	next = append(next, dealerName)

	if err := s.deactivation.SetDeactivatedList(ctx, next); err != nil {
		return fmt.Errorf("deactivating dealer %s: %w", dealerName, err)
	}

	s.cache.Set(cacheKeyDeactivated, next)
	s.cache.DeleteByPrefix(mergedCachePrefix)
	s.notify(TopicDealers)

	return nil
}

func (s *service) ReactivateDealer(ctx context.Context, dealerName string) error {
	names, err := s.GetDeactivatedDealers(ctx)
	if err != nil {
		return err
	}

	next := make([]string, 0, len(names))
	for _, name := range names {
		if name != dealerName {
			next = append(next, name)
		}
	}

	if len(next) == len(names) {
		return nil
	}

	if err := s.deactivation.SetDeactivatedList(ctx, next); err != nil {
		return fmt.Errorf("reactivating dealer %s: %w", dealerName, err)
	}

	s.cache.Set(cacheKeyDeactivated, next)
	s.cache.DeleteByPrefix(mergedCachePrefix)
	s.notify(TopicDealers)

	return nil
}

// Subscribe registers a callback for a topic and returns its unsubscribe
// function.
func (s *service) Subscribe(topic string, fn func()) func() {
	token, err := utils.GenerateID()
	if err != nil {
		log.L.WithError(err).Warn("subscriber token generation failed, falling back to timestamp")
		token = fmt.Sprintf("sub-%d", time.Now().UnixNano())
	}

	s.mu.Lock()
	if s.subscribers[topic] == nil {
		s.subscribers[topic] = make(map[string]func())
	}
	s.subscribers[topic][token] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers[topic], token)
		s.mu.Unlock()
	}
}

func (s *service) notify(topic string) {
	s.mu.Lock()
	callbacks := make([]func(), 0, len(s.subscribers[topic]))
	for _, fn := range s.subscribers[topic] {
		callbacks = append(callbacks, fn)
	}
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// InvalidateCache drops one cached entry. The special key "mergedDealers"
// drops every merged view regardless of report scope.
func (s *service) InvalidateCache(key string) {
	if key == mergedCacheNamespace {
		s.cache.DeleteByPrefix(mergedCachePrefix)
		return
	}
	s.cache.Delete(key)
}

func (s *service) ClearAllCaches() {
	s.cache.Clear()
}

func cloneOverrides(src map[string]domain.DealerOverride) map[string]domain.DealerOverride {
	dst := make(map[string]domain.DealerOverride, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
