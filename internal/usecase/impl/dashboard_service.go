package impl

import (
	"context"

	"smartpack/internal/domain/derive"
	"smartpack/internal/usecase"
)

type dashboardService struct {
	dispatcher *Dispatcher
	books      usecase.BookUsecase
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(dispatcher *Dispatcher, books usecase.BookUsecase) usecase.DashboardUsecase {
	return &dashboardService{
		dispatcher: dispatcher,
		books:      books,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context) (*usecase.Dashboard, error) {
	state, err := s.dispatcher.Store().Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.Dashboard{
		State:          state,
		Status:         derive.Evaluate(state),
		ScanInProgress: s.books.ScanInProgress(),
	}, nil
}
