package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"smartpack/internal/domain/entity"
	domainerrors "smartpack/internal/domain/errors"
	"smartpack/internal/domain/event"
	"smartpack/internal/domain/lifecycle"
	"smartpack/internal/domain/repository"
	"smartpack/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookServiceFixtures struct {
	dispatcherFixtures
	service  *bookService
	lifetime *lifecycle.Lifetime
}

func createTestBookService(t *testing.T, scanDelay time.Duration, mutate ...func(*entity.State)) bookServiceFixtures {
	t.Helper()

	fx := createTestDispatcher(t, mutate...)
	cfg := newTestConfig()
	cfg.Simulation.ScanDelay = scanDelay

	lifetime := lifecycle.NewLifetime()
	t.Cleanup(func() {
		_ = lifetime.Stop(context.Background())
	})

	service := NewBookService(BookServiceParams{
		Config:     cfg,
		Dispatcher: fx.dispatcher,
		Lifetime:   lifetime,
		Logger:     newDiscardLogger(),
	})

	return bookServiceFixtures{
		dispatcherFixtures: fx,
		service:            service.(*bookService),
		lifetime:           lifetime,
	}
}

func receive(t *testing.T, results <-chan usecase.ScanResult) usecase.ScanResult {
	t.Helper()

	select {
	case result, ok := <-results:
		require.True(t, ok, "result channel closed without a result")

		return result
	case <-time.After(2 * time.Second):
		require.FailNow(t, "scan did not finish")

		return usecase.ScanResult{}
	}
}

func TestBookService_ListBooks(t *testing.T) {
	fx := createTestBookService(t, time.Millisecond)

	list, err := fx.service.ListBooks(context.Background())
	require.NoError(t, err)
	assert.Len(t, list.Books, 6)
	assert.Equal(t, 5, list.Status.RequiredTotal)
	assert.Equal(t, 4, list.Status.RequiredPresentCount)
	assert.Equal(t, []string{"Mathematics Textbook"}, list.Status.MissingRequired)
	assert.InDelta(t, 80.0, list.Status.ProgressPercentage, 1e-9)
}

func TestBookService_ToggleBookPresence(t *testing.T) {
	fx := createTestBookService(t, time.Millisecond)
	ctx := context.Background()

	result, err := fx.service.ToggleBookPresence(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, result.Book)
	assert.True(t, result.Book.IsPresent)
	assert.Equal(t, messageAddedToBag, result.Message)

	result, err = fx.service.ToggleBookPresence(ctx, "1")
	require.NoError(t, err)
	assert.False(t, result.Book.IsPresent)
	assert.Equal(t, messageRemovedFromBag, result.Message)
}

func TestBookService_ToggleUnknownBook(t *testing.T) {
	fx := createTestBookService(t, time.Millisecond)
	ctx := context.Background()

	before, err := fx.store.Snapshot(ctx)
	require.NoError(t, err)

	result, err := fx.service.ToggleBookPresence(ctx, "42")
	require.NoError(t, err)
	assert.Nil(t, result.Book)
	assert.Empty(t, result.Message)

	after, err := fx.store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestBookService_ScanFindsFirstMissingRequiredBook(t *testing.T) {
	fx := createTestBookService(t, 5*time.Millisecond)
	fx.expectPublish()
	ctx := context.Background()

	results, err := fx.service.ScanForBooks(ctx)
	require.NoError(t, err)

	result := receive(t, results)
	assert.Equal(t, usecase.ScanOutcomeScanned, result.Outcome)
	require.NotNil(t, result.Book)
	assert.Equal(t, "1", result.Book.ID)
	assert.True(t, result.Book.IsPresent)
	require.NotNil(t, result.Notification)
	assert.Equal(t, titleBookScanned, result.Notification.Title)
	assert.Equal(t, "Mathematics Textbook added to your backpack", result.Notification.Message)

	_, open := <-results
	assert.False(t, open)

	book, err := fx.store.Book(ctx, "1")
	require.NoError(t, err)
	assert.True(t, book.IsPresent)

	fx.service.scan.Wait()
	assert.False(t, fx.service.ScanInProgress())
}

func TestBookService_ScanWithNothingMissing(t *testing.T) {
	fx := createTestBookService(t, time.Millisecond, func(s *entity.State) {
		for i := range s.Books {
			if s.Books[i].IsRequired {
				s.Books[i].IsPresent = true
			}
		}
	})
	fx.expectPublish()

	results, err := fx.service.ScanForBooks(context.Background())
	require.NoError(t, err)

	result := receive(t, results)
	assert.Equal(t, usecase.ScanOutcomeNoNewBooks, result.Outcome)
	assert.Nil(t, result.Book)
	require.NotNil(t, result.Notification)
	assert.Equal(t, messageNoNewBooks, result.Notification.Message)
}

func TestBookService_ScanWithNotificationsDisabled(t *testing.T) {
	fx := createTestBookService(t, time.Millisecond, func(s *entity.State) {
		s.Settings.NotificationsEnabled = false
	})

	results, err := fx.service.ScanForBooks(context.Background())
	require.NoError(t, err)

	result := receive(t, results)
	assert.Equal(t, usecase.ScanOutcomeScanned, result.Outcome)
	assert.Nil(t, result.Notification)
}

func TestBookService_SecondScanIsRejected(t *testing.T) {
	fx := createTestBookService(t, time.Hour)
	ctx := context.Background()

	results, err := fx.service.ScanForBooks(ctx)
	require.NoError(t, err)
	assert.True(t, fx.service.ScanInProgress())

	_, err = fx.service.ScanForBooks(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrScanInProgress)

	assert.True(t, fx.service.CancelScan(ctx))
	assert.Equal(t, usecase.ScanOutcomeCancelled, receive(t, results).Outcome)

	fx.service.scan.Wait()
	assert.False(t, fx.service.CancelScan(ctx))

	book, err := fx.store.Book(ctx, "1")
	require.NoError(t, err)
	assert.False(t, book.IsPresent)
}

func TestBookService_ScanSurvivesRequestContext(t *testing.T) {
	fx := createTestBookService(t, 5*time.Millisecond)
	fx.expectPublish()

	ctx, cancel := context.WithCancel(context.Background())
	results, err := fx.service.ScanForBooks(ctx)
	require.NoError(t, err)
	cancel()

	assert.Equal(t, usecase.ScanOutcomeScanned, receive(t, results).Outcome)
}

func TestBookService_ShutdownCancelsScan(t *testing.T) {
	fx := createTestBookService(t, time.Hour)

	results, err := fx.service.ScanForBooks(context.Background())
	require.NoError(t, err)

	require.NoError(t, fx.lifetime.Stop(context.Background()))
	assert.Equal(t, usecase.ScanOutcomeCancelled, receive(t, results).Outcome)
}

// pauseAfterScanStore holds the scan right after its BookScanned batch commits.
type pauseAfterScanStore struct {
	repository.Store
	committed chan struct{}
	release   chan struct{}
	once      sync.Once
}

func (s *pauseAfterScanStore) Decide(ctx context.Context, decide repository.Decider, react repository.Reactor) (repository.Transition, error) {
	transition, err := s.Store.Decide(ctx, decide, react)
	for _, e := range transition.Applied {
		if e.EventType() == event.BookScannedType {
			s.once.Do(func() {
				close(s.committed)
				<-s.release
			})
		}
	}

	return transition, err
}

func TestBookService_CancelWhileScanCompletes(t *testing.T) {
	fx := createTestBookService(t, time.Millisecond)
	fx.expectPublish()
	ctx := context.Background()

	store := &pauseAfterScanStore{
		Store:     fx.store,
		committed: make(chan struct{}),
		release:   make(chan struct{}),
	}
	fx.dispatcher.store = store

	results, err := fx.service.ScanForBooks(ctx)
	require.NoError(t, err)

	select {
	case <-store.committed:
	case <-time.After(2 * time.Second):
		t.Fatal("scan did not commit")
	}

	assert.False(t, fx.service.CancelScan(ctx))
	assert.True(t, fx.service.ScanInProgress())
	close(store.release)

	result := receive(t, results)
	assert.Equal(t, usecase.ScanOutcomeScanned, result.Outcome)
	require.NotNil(t, result.Notification)
	assert.Equal(t, titleBookScanned, result.Notification.Title)

	notifications, err := fx.store.Notifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, titleBookScanned, notifications[0].Title)
}

func TestBookService_ShutdownWaitsForCompletingScan(t *testing.T) {
	fx := createTestBookService(t, time.Millisecond)
	fx.expectPublish()

	store := &pauseAfterScanStore{
		Store:     fx.store,
		committed: make(chan struct{}),
		release:   make(chan struct{}),
	}
	fx.dispatcher.store = store

	results, err := fx.service.ScanForBooks(context.Background())
	require.NoError(t, err)
	<-store.committed

	stopCtx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.Error(t, fx.lifetime.Stop(stopCtx))

	close(store.release)
	require.NoError(t, fx.lifetime.Stop(context.Background()))

	select {
	case result := <-results:
		assert.Equal(t, usecase.ScanOutcomeScanned, result.Outcome)
	default:
		t.Fatal("scan result not delivered before shutdown returned")
	}
}
