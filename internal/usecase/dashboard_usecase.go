package usecase

import (
	"context"

	"smartpack/internal/domain/derive"
	"smartpack/internal/domain/entity"
)

// Dashboard is one consistent snapshot of the whole session
type Dashboard struct {
	State          entity.State  `json:"state"`
	Status         derive.Status `json:"status"`
	ScanInProgress bool          `json:"scan_in_progress"`
}

// DashboardUsecase defines the interface for the home screen
type DashboardUsecase interface {
	// GetDashboard returns a snapshot and its derived status
	GetDashboard(ctx context.Context) (*Dashboard, error)
}
