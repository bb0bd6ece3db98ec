package dealerstore

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yes-weigh/yesbheem-sub001/infrastructure/repository/mocks"
	"github.com/yes-weigh/yesbheem-sub001/internal/config"
	"github.com/yes-weigh/yesbheem-sub001/internal/domain"
	"github.com/yes-weigh/yesbheem-sub001/internal/usecases/merging"
	"github.com/yes-weigh/yesbheem-sub001/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

type storeMocks struct {
	reports      *mocks.MockReportRepository
	overrides    *mocks.MockOverrideRepository
	deactivation *mocks.MockDeactivationRepository
	kpi          *mocks.MockKPIRepository
	settings     *mocks.MockSettingsRepository
}

func newTestStore(t *testing.T) (Store, storeMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := storeMocks{
		reports:      mocks.NewMockReportRepository(ctrl),
		overrides:    mocks.NewMockOverrideRepository(ctrl),
		deactivation: mocks.NewMockDeactivationRepository(ctrl),
		kpi:          mocks.NewMockKPIRepository(ctrl),
		settings:     mocks.NewMockSettingsRepository(ctrl),
	}

	cfg := &config.Config{Cache: config.Cache{TTL: time.Minute}}

	store := NewService(
		cfg,
		m.reports,
		m.overrides,
		m.deactivation,
		m.kpi,
		m.settings,
		merging.NewService(cfg),
	)

	return store, m
}

func sampleReport() []domain.Dealer {
	return []domain.Dealer{
		{CustomerName: "Alpha Traders", Sales: 100000, BillingState: "Kerala"},
		{CustomerName: "Beta Retail", Sales: 250000, BillingState: "Tamil Nadu"},
	}
}

func TestGetMergedDealers_CachesResult(t *testing.T) {
	store, m := newTestStore(t)
	ctx := context.Background()

	m.reports.EXPECT().GetAggregatedReport(gomock.Any()).Return(sampleReport(), nil).Times(1)
	m.overrides.EXPECT().GetOverrides(gomock.Any()).Return(map[string]domain.DealerOverride{}, nil).Times(1)
	m.deactivation.EXPECT().GetDeactivatedList(gomock.Any()).Return([]string{}, nil).Times(1)

	first, err := store.GetMergedDealers(ctx, "", false)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	// Second read must come from cache, hence the Times(1) expectations.
	second, err := store.GetMergedDealers(ctx, "", false)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetMergedDealers_CoalescesConcurrentReads(t *testing.T) {
	store, m := newTestStore(t)
	ctx := context.Background()

	m.reports.EXPECT().
		GetAggregatedReport(gomock.Any()).
		DoAndReturn(func(context.Context) ([]domain.Dealer, error) {
			time.Sleep(50 * time.Millisecond)
			return sampleReport(), nil
		}).
		Times(1)
	m.overrides.EXPECT().GetOverrides(gomock.Any()).Return(map[string]domain.DealerOverride{}, nil).Times(1)
	m.deactivation.EXPECT().GetDeactivatedList(gomock.Any()).Return([]string{}, nil).Times(1)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			merged, err := store.GetMergedDealers(ctx, "", false)
			assert.NoError(t, err)
			assert.Len(t, merged, 2)
		}()
	}
	wg.Wait()
}

func TestGetMergedDealers_ForceRefreshBypassesCache(t *testing.T) {
	store, m := newTestStore(t)
	ctx := context.Background()

	m.reports.EXPECT().GetReport(gomock.Any(), "report-1").Return(sampleReport(), nil).Times(2)
	m.overrides.EXPECT().GetOverrides(gomock.Any()).Return(map[string]domain.DealerOverride{}, nil).Times(1)
	m.deactivation.EXPECT().GetDeactivatedList(gomock.Any()).Return([]string{}, nil).Times(1)

	_, err := store.GetMergedDealers(ctx, "report-1", false)
	require.NoError(t, err)

	_, err = store.GetMergedDealers(ctx, "report-1", true)
	require.NoError(t, err)
}

func TestGetMergedDealers_PropagatesReportError(t *testing.T) {
	store, m := newTestStore(t)
	ctx := context.Background()

	m.reports.EXPECT().GetReport(gomock.Any(), "missing").Return(nil, fmt.Errorf("report missing: %w", repositoryNotFound())).Times(1)
	m.overrides.EXPECT().GetOverrides(gomock.Any()).Return(map[string]domain.DealerOverride{}, nil).MaxTimes(1)
	m.deactivation.EXPECT().GetDeactivatedList(gomock.Any()).Return([]string{}, nil).MaxTimes(1)

	_, err := store.GetMergedDealers(ctx, "missing", false)
	assert.Error(t, err)
}

func repositoryNotFound() error {
	return fmt.Errorf("not found")
}

func TestUpdateOverride_PatchesCachedViewsBeforePersisting(t *testing.T) {
	store, m := newTestStore(t)
	ctx := context.Background()

	m.reports.EXPECT().GetAggregatedReport(gomock.Any()).Return(sampleReport(), nil).Times(1)
	m.overrides.EXPECT().GetOverrides(gomock.Any()).Return(map[string]domain.DealerOverride{}, nil).Times(1)
	m.deactivation.EXPECT().GetDeactivatedList(gomock.Any()).Return([]string{}, nil).Times(1)

	_, err := store.GetMergedDealers(ctx, "", false)
	require.NoError(t, err)

	newState := "Karnataka"
	override := domain.DealerOverride{BillingState: &newState}

	persisted := make(chan struct{}, 1)
	m.overrides.EXPECT().
		SetOverride(gomock.Any(), "Alpha Traders", override).
		DoAndReturn(func(context.Context, string, domain.DealerOverride) error {
			persisted <- struct{}{}
			return nil
		})

	notified := 0
	unsubscribe := store.Subscribe(TopicDealers, func() { notified++ })
	defer unsubscribe()

	require.NoError(t, store.UpdateOverride(ctx, "Alpha Traders", override))
	<-persisted

	// The cached view must already reflect the override, with no new
	// backing-store read.
	merged, err := store.GetMergedDealers(ctx, "", false)
	require.NoError(t, err)

	var alpha *domain.MergedDealer
	for i := range merged {
		if merged[i].CustomerName == "Alpha Traders" {
			alpha = &merged[i]
		}
	}
	require.NotNil(t, alpha)
	assert.Equal(t, "Karnataka", alpha.BillingState)
	assert.True(t, alpha.HasOverride)
	require.NotNil(t, alpha.OriginalData)
	assert.Equal(t, "Kerala", alpha.OriginalData.BillingState)
	assert.GreaterOrEqual(t, notified, 1)
}

func TestUpdateOverride_PersistFailureDropsMergedCaches(t *testing.T) {
	store, m := newTestStore(t)
	ctx := context.Background()

	// Two reads: the primed cache, then the recovery read after the failed
	// write invalidates it.
	m.reports.EXPECT().GetAggregatedReport(gomock.Any()).Return(sampleReport(), nil).Times(2)
	m.overrides.EXPECT().GetOverrides(gomock.Any()).Return(map[string]domain.DealerOverride{}, nil).Times(1)
	m.deactivation.EXPECT().GetDeactivatedList(gomock.Any()).Return([]string{}, nil).Times(1)

	_, err := store.GetMergedDealers(ctx, "", false)
	require.NoError(t, err)

	newState := "Karnataka"
	m.overrides.EXPECT().
		SetOverride(gomock.Any(), "Alpha Traders", gomock.Any()).
		Return(fmt.Errorf("connection reset"))
	// The override cache is dropped too, so the recovery read refetches it.
	m.overrides.EXPECT().GetOverrides(gomock.Any()).Return(map[string]domain.DealerOverride{}, nil).Times(1)

	err = store.UpdateOverride(ctx, "Alpha Traders", domain.DealerOverride{BillingState: &newState})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Alpha Traders")

	merged, err := store.GetMergedDealers(ctx, "", false)
	require.NoError(t, err)

	for _, dealer := range merged {
		if dealer.CustomerName == "Alpha Traders" {
			assert.Equal(t, "Kerala", dealer.BillingState)
			assert.False(t, dealer.HasOverride)
		}
	}
}

func TestUpdateOverride_RejectsEmptyOverride(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.UpdateOverride(context.Background(), "Alpha Traders", domain.DealerOverride{})
	assert.Error(t, err)
}

func TestRevertOverride_InvalidatesMergedViews(t *testing.T) {
	store, m := newTestStore(t)
	ctx := context.Background()

	m.reports.EXPECT().GetAggregatedReport(gomock.Any()).Return(sampleReport(), nil).Times(2)
	m.overrides.EXPECT().GetOverrides(gomock.Any()).Return(map[string]domain.DealerOverride{}, nil).Times(1)
	m.deactivation.EXPECT().GetDeactivatedList(gomock.Any()).Return([]string{}, nil).Times(1)

	_, err := store.GetMergedDealers(ctx, "", false)
	require.NoError(t, err)

	m.overrides.EXPECT().DeleteOverride(gomock.Any(), "Alpha Traders").Return(nil)

	notified := false
	unsubscribe := store.Subscribe(TopicDealers, func() { notified = true })
	defer unsubscribe()

	require.NoError(t, store.RevertOverride(ctx, "Alpha Traders"))
	assert.True(t, notified)

	// Merged views were dropped, so this read goes back to the repository.
	_, err = store.GetMergedDealers(ctx, "", false)
	require.NoError(t, err)
}

func TestDeactivateDealer_AddsNameAndRefreshesViews(t *testing.T) {
	store, m := newTestStore(t)
	ctx := context.Background()

	m.deactivation.EXPECT().GetDeactivatedList(gomock.Any()).Return([]string{"Old Dealer"}, nil).Times(1)
	m.deactivation.EXPECT().SetDeactivatedList(gomock.Any(), []string{"Old Dealer", "Alpha Traders"}).Return(nil)

	require.NoError(t, store.DeactivateDealer(ctx, "Alpha Traders"))

	// Already-deactivated names are a no-op: the list is cached and no
	// second write happens.
	require.NoError(t, store.DeactivateDealer(ctx, "Alpha Traders"))

	names, err := store.GetDeactivatedDealers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Old Dealer", "Alpha Traders"}, names)
}

func TestReactivateDealer_RemovesName(t *testing.T) {
	store, m := newTestStore(t)
	ctx := context.Background()

	m.deactivation.EXPECT().GetDeactivatedList(gomock.Any()).Return([]string{"Alpha Traders", "Beta Retail"}, nil).Times(1)
	m.deactivation.EXPECT().SetDeactivatedList(gomock.Any(), []string{"Beta Retail"}).Return(nil)

	require.NoError(t, store.ReactivateDealer(ctx, "Alpha Traders"))

	// Absent names are a no-op.
	require.NoError(t, store.ReactivateDealer(ctx, "Alpha Traders"))
}

func TestInvalidateCache_MergedNamespaceClearsAllScopes(t *testing.T) {
	store, m := newTestStore(t)
	ctx := context.Background()

	m.reports.EXPECT().GetAggregatedReport(gomock.Any()).Return(sampleReport(), nil).Times(2)
	m.reports.EXPECT().GetReport(gomock.Any(), "report-1").Return(sampleReport(), nil).Times(2)
	m.overrides.EXPECT().GetOverrides(gomock.Any()).Return(map[string]domain.DealerOverride{}, nil).Times(1)
	m.deactivation.EXPECT().GetDeactivatedList(gomock.Any()).Return([]string{}, nil).Times(1)

	_, err := store.GetMergedDealers(ctx, "", false)
	require.NoError(t, err)
	_, err = store.GetMergedDealers(ctx, "report-1", false)
	require.NoError(t, err)

	store.InvalidateCache("mergedDealers")

	_, err = store.GetMergedDealers(ctx, "", false)
	require.NoError(t, err)
	_, err = store.GetMergedDealers(ctx, "report-1", false)
	require.NoError(t, err)
}

func TestCachedReferenceGetters(t *testing.T) {
	store, m := newTestStore(t)
	ctx := context.Background()

	m.kpi.EXPECT().GetKPIData(gomock.Any()).
		Return(domain.KPIData{"kerala": {Name: "Kerala", Target: "50 L"}}, nil).Times(1)
	m.settings.EXPECT().GetZipCache(gomock.Any()).
		Return(map[string]string{"682001": "Ernakulam"}, nil).Times(1)
	m.settings.EXPECT().GetGeneralSettings(gomock.Any()).
		Return(domain.GeneralSettings{ActiveReportID: "report-1"}, nil).Times(1)

	for i := 0; i < 3; i++ {
		kpi, err := store.GetKPIData(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Kerala", kpi["kerala"].Name)

		zips, err := store.GetZipCache(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Ernakulam", zips["682001"])

		settings, err := store.GetGeneralSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, "report-1", settings.ActiveReportID)
	}
}

func TestGetMergedDealers_FreshReadNotifiesSubscribers(t *testing.T) {
	store, m := newTestStore(t)
	ctx := context.Background()

	m.reports.EXPECT().GetAggregatedReport(gomock.Any()).Return(sampleReport(), nil).Times(1)
	m.overrides.EXPECT().GetOverrides(gomock.Any()).Return(map[string]domain.DealerOverride{}, nil).Times(1)
	m.deactivation.EXPECT().GetDeactivatedList(gomock.Any()).Return([]string{}, nil).Times(1)

	calls := 0
	unsubscribe := store.Subscribe(TopicDealers, func() { calls++ })
	defer unsubscribe()

	_, err := store.GetMergedDealers(ctx, "", false)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "a completed load must notify dealers subscribers")

	// Cache hits do not notify.
	_, err = store.GetMergedDealers(ctx, "", false)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestSubscribe_UnsubscribeStopsNotifications(t *testing.T) {
	store, m := newTestStore(t)
	ctx := context.Background()

	m.deactivation.EXPECT().GetDeactivatedList(gomock.Any()).Return([]string{}, nil).Times(1)
	m.deactivation.EXPECT().SetDeactivatedList(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	calls := 0
	unsubscribe := store.Subscribe(TopicDealers, func() { calls++ })

	require.NoError(t, store.DeactivateDealer(ctx, "Alpha Traders"))
	assert.Equal(t, 1, calls)

	unsubscribe()

	require.NoError(t, store.DeactivateDealer(ctx, "Beta Retail"))
	assert.Equal(t, 1, calls)
}
