package impl

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"smartpack/config"
	"smartpack/internal/domain/entity"
	"smartpack/internal/domain/seed"
	"smartpack/internal/infra/memory"
	mockService "smartpack/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Simulation: config.SimulationConfig{
			DrainStep:       0.1,
			DrainHoursStep:  0.02,
			ChargeStep:      0.5,
			ChargeHoursStep: 0.1,
			HistorySize:     5,
			ScanDelay:       10 * time.Millisecond,
		},
		Thresholds: config.ThresholdsConfig{
			MaxWeightKg:       5,
			LowBatteryPercent: 20,
		},
	}
}

// dispatcherFixtures holds a dispatcher over a seeded in-memory store.
type dispatcherFixtures struct {
	store      *memory.Store
	publisher  *mockService.MockEventPublisher
	dispatcher *Dispatcher
}

func createTestDispatcher(t *testing.T, mutate ...func(*entity.State)) dispatcherFixtures {
	t.Helper()

	state := seed.State(testNow)
	for _, m := range mutate {
		m(&state)
	}

	store := memory.NewStore(state, 5, newDiscardLogger())
	publisher := mockService.NewMockEventPublisher(t)
	dispatcher := NewDispatcher(DispatcherParams{
		Store:     store,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	ids := 0
	dispatcher.now = func() time.Time { return testNow }
	dispatcher.newID = func() string {
		ids++

		return fmt.Sprintf("n-%d", ids)
	}

	return dispatcherFixtures{
		store:      store,
		publisher:  publisher,
		dispatcher: dispatcher,
	}
}

// expectPublish accepts any number of published notifications.
func (f dispatcherFixtures) expectPublish() {
	f.publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.Anything).
		Return(nil).
		Maybe()
}
