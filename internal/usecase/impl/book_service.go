package impl

import (
	"context"
	"log/slog"

	"smartpack/config"
	deliverycontext "smartpack/internal/delivery/context"
	"smartpack/internal/domain/derive"
	"smartpack/internal/domain/entity"
	domainerrors "smartpack/internal/domain/errors"
	"smartpack/internal/domain/event"
	"smartpack/internal/domain/lifecycle"
	"smartpack/internal/errors"
	"smartpack/internal/simulation"
	"smartpack/internal/usecase"

	"go.uber.org/fx"
)

const (
	messageAddedToBag     = "Added to bag"
	messageRemovedFromBag = "Removed from bag"
)

type bookService struct {
	dispatcher *Dispatcher
	scan       *simulation.DelayedTask
	lifetime   *lifecycle.Lifetime
	logger     *slog.Logger
}

// BookServiceParams holds dependencies for BookService, injected by Fx
type BookServiceParams struct {
	fx.In

	Config     *config.Config
	Dispatcher *Dispatcher
	Lifetime   *lifecycle.Lifetime
	Logger     *slog.Logger
}

// NewBookService creates a new book service instance
func NewBookService(params BookServiceParams) usecase.BookUsecase {
	return &bookService{
		dispatcher: params.Dispatcher,
		scan:       simulation.NewDelayedTask(params.Config.Simulation.ScanDelay, params.Lifetime),
		lifetime:   params.Lifetime,
		logger:     params.Logger,
	}
}

// ListBooks returns all books and the derived packing progress
func (s *bookService) ListBooks(ctx context.Context) (*usecase.BookList, error) {
	state, err := s.dispatcher.Store().Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.BookList{
		Books:  state.Books,
		Status: derive.Evaluate(state),
	}, nil
}

// ToggleBookPresence flips a book in or out of the bag
func (s *bookService) ToggleBookPresence(ctx context.Context, bookID string) (*usecase.ToggleResult, error) {
	result, err := s.dispatcher.Dispatch(ctx, event.BookPresenceToggled{
		BookID:     bookID,
		OccurredAt: s.dispatcher.Now(),
	})
	if err != nil {
		return nil, err
	}

	for _, book := range result.After.Books {
		if book.ID != bookID {
			continue
		}

		message := messageRemovedFromBag
		if book.IsPresent {
			message = messageAddedToBag
		}

		return &usecase.ToggleResult{Book: &book, Message: message}, nil
	}

	return &usecase.ToggleResult{}, nil
}

// ScanForBooks starts the simulated scan under the application lifetime, so
// it survives the request that started it and stops on shutdown.
func (s *bookService) ScanForBooks(ctx context.Context) (<-chan usecase.ScanResult, error) {
	results := make(chan usecase.ScanResult, 1)
	parent := deliverycontext.WithRequestID(s.lifetime.Context(), deliverycontext.GetRequestIDFromContext(ctx))
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	err := s.scan.Start(parent, func(scanCtx context.Context) {
		results <- s.completeScan(scanCtx, logger)
		close(results)
	}, func() {
		logger.Info("[BookService] Scan cancelled")
		results <- usecase.ScanResult{Outcome: usecase.ScanOutcomeCancelled}
		close(results)
	})
	if errors.Is(err, simulation.ErrBusy) {
		return nil, errors.WithStack(domainerrors.ErrScanInProgress)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("[BookService] Scan started")

	return results, nil
}

func (s *bookService) completeScan(ctx context.Context, logger *slog.Logger) usecase.ScanResult {
	var found *entity.Book

	_, err := s.dispatcher.DispatchDecided(ctx, func(state entity.State) ([]event.Event, error) {
		found = nil
		for _, book := range state.Books {
			if book.IsRequired && !book.IsPresent {
				book.IsPresent = true
				found = &book

				return []event.Event{event.BookScanned{BookID: book.ID, OccurredAt: s.dispatcher.Now()}}, nil
			}
		}

		return nil, nil
	})
	if err != nil {
		logger.Warn("[BookService] Scan did not complete", slog.Any("error", err))

		return usecase.ScanResult{Outcome: usecase.ScanOutcomeCancelled}
	}

	result := usecase.ScanResult{Outcome: usecase.ScanOutcomeNoNewBooks, Book: found}
	notice := noNewBooksAlert()
	if found != nil {
		result.Outcome = usecase.ScanOutcomeScanned
		notice = scannedAlert(*found)
	}

	notification, err := s.dispatcher.notify(ctx, notice)
	if err != nil {
		logger.Warn("[BookService] Failed to raise scan notification", slog.Any("error", err))
	}
	result.Notification = notification

	logger.Info("[BookService] Scan completed", slog.String("outcome", string(result.Outcome)))

	return result
}

// CancelScan stops a scan still waiting out its delay. A scan that is already
// completing is left to finish and false is returned.
func (s *bookService) CancelScan(ctx context.Context) bool {
	cancelled := s.scan.Cancel()
	if cancelled {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("[BookService] Scan cancel requested")
	}

	return cancelled
}

// ScanInProgress reports whether a scan is pending
func (s *bookService) ScanInProgress() bool {
	return s.scan.Running()
}
