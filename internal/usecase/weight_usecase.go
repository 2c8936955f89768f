package usecase

import (
	"context"

	"smartpack/internal/domain/derive"
	"smartpack/internal/domain/entity"
)

// WeightStatus is the bag weight with its limit and derived tier
type WeightStatus struct {
	Weight       entity.Weight     `json:"weight"`
	MaxWeightKg  float64           `json:"max_weight_kg"`
	Tier         derive.WeightTier `json:"tier"`
	IsOverweight bool              `json:"is_overweight"`
}

// WeightUsecase defines the interface for bag weight use cases
type WeightUsecase interface {
	// GetWeight returns the current weight status
	GetWeight(ctx context.Context) (*WeightStatus, error)

	// RecordWeight stores a new sensor reading. Negative readings are stored as zero
	RecordWeight(ctx context.Context, kg float64) (*WeightStatus, error)
}
