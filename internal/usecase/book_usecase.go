package usecase

import (
	"context"

	"smartpack/internal/domain/derive"
	"smartpack/internal/domain/entity"
)

// ScanOutcome names how a book scan ended
type ScanOutcome string

const (
	ScanOutcomeScanned    ScanOutcome = "scanned"      // A missing required book was found
	ScanOutcomeNoNewBooks ScanOutcome = "no_new_books" // Every required book was already present
	ScanOutcomeCancelled  ScanOutcome = "cancelled"    // The scan was cancelled before completing
)

// ScanResult is delivered once when a scan finishes
type ScanResult struct {
	Outcome      ScanOutcome          `json:"outcome"`
	Book         *entity.Book         `json:"book,omitempty"`         // Set for ScanOutcomeScanned
	Notification *entity.Notification `json:"notification,omitempty"` // Nil when notifications are disabled
}

// ToggleResult describes a presence toggle
type ToggleResult struct {
	Book    *entity.Book `json:"book,omitempty"` // Nil when the id is unknown
	Message string       `json:"message"`        // "Added to bag" or "Removed from bag"
}

// BookList is the book collection with its packing progress
type BookList struct {
	Books  []entity.Book `json:"books"`
	Status derive.Status `json:"status"`
}

// BookUsecase defines the interface for book tracking use cases
type BookUsecase interface {
	// ListBooks returns all books and the derived packing progress
	ListBooks(ctx context.Context) (*BookList, error)

	// ToggleBookPresence flips a book in or out of the bag. Unknown ids are a no-op
	ToggleBookPresence(ctx context.Context, bookID string) (*ToggleResult, error)

	// ScanForBooks starts the simulated scan. The channel receives exactly one
	// result and is then closed. Returns ErrScanInProgress while a scan runs
	ScanForBooks(ctx context.Context) (<-chan ScanResult, error)

	// CancelScan stops a pending scan and reports whether one was running
	CancelScan(ctx context.Context) bool

	// ScanInProgress reports whether a scan is pending
	ScanInProgress() bool
}
