package impl

import (
	"context"
	"math"
	"strconv"

	"smartpack/internal/domain/derive"
	"smartpack/internal/domain/entity"
	domainerrors "smartpack/internal/domain/errors"
	"smartpack/internal/domain/event"
	"smartpack/internal/errors"
	"smartpack/internal/usecase"
)

type weightService struct {
	dispatcher *Dispatcher
}

// NewWeightService creates a new weight service instance
func NewWeightService(dispatcher *Dispatcher) usecase.WeightUsecase {
	return &weightService{dispatcher: dispatcher}
}

func (s *weightService) GetWeight(ctx context.Context) (*usecase.WeightStatus, error) {
	state, err := s.dispatcher.Store().Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return newWeightStatus(state), nil
}

func (s *weightService) RecordWeight(ctx context.Context, kg float64) (*usecase.WeightStatus, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			"weight must be a finite number, got " + strconv.FormatFloat(kg, 'g', -1, 64)))
	}

	result, err := s.dispatcher.Dispatch(ctx, event.WeightMeasured{
		Kg:         max(kg, 0),
		OccurredAt: s.dispatcher.Now(),
	})
	if err != nil {
		return nil, err
	}

	return newWeightStatus(result.After), nil
}

func newWeightStatus(state entity.State) *usecase.WeightStatus {
	current := state.Weight.CurrentKg
	limit := state.Settings.MaxWeightKg

	return &usecase.WeightStatus{
		Weight:       state.Weight,
		MaxWeightKg:  limit,
		Tier:         derive.WeightTierOf(current, limit),
		IsOverweight: derive.IsOverweight(current, limit),
	}
}
