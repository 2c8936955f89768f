package handler

import (
	"net/http"
	"strconv"

	"smartpack/internal/delivery/api/response"
	"smartpack/internal/errors"
	"smartpack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookHandlerParams holds dependencies for BookHandler, injected by Fx.
type BookHandlerParams struct {
	fx.In

	BookUC usecase.BookUsecase
}

// BookHandler serves the book list and the scanner
type BookHandler struct {
	bookUC usecase.BookUsecase
}

// NewBookHandler is the constructor for BookHandler
func NewBookHandler(params BookHandlerParams) *BookHandler {
	return &BookHandler{
		bookUC: params.BookUC,
	}
}

// ScanStartedResponse is returned when a scan runs in the background
type ScanStartedResponse struct {
	Status string `json:"status"`
}

// ScanCancelResponse reports whether DELETE /books/scan stopped a scan
type ScanCancelResponse struct {
	Cancelled bool `json:"cancelled"`
}

// ListBooks handles GET /books
func (h *BookHandler) ListBooks(c echo.Context) error {
	books, err := h.bookUC.ListBooks(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, books)
}

// ToggleBook handles POST /books/:id/toggle. Unknown ids answer 200 with no book.
func (h *BookHandler) ToggleBook(c echo.Context) error {
	result, err := h.bookUC.ToggleBookPresence(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// StartScan handles POST /books/scan. With ?wait=true the response carries
// the scan result, otherwise it returns 202 as soon as the scan is running.
func (h *BookHandler) StartScan(c echo.Context) error {
	wait := false
	if raw := c.QueryParam("wait"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "wait must be a boolean")
		}
		wait = parsed
	}

	ctx := c.Request().Context()
	results, err := h.bookUC.ScanForBooks(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !wait {
		return response.Success(c, http.StatusAccepted, ScanStartedResponse{Status: "scanning"})
	}

	select {
	case result := <-results:
		return response.Success(c, http.StatusOK, result)
	case <-ctx.Done():
		// The scan keeps running, only the waiting client is gone.
		return errors.WithStack(ctx.Err())
	}
}

// CancelScan handles DELETE /books/scan
func (h *BookHandler) CancelScan(c echo.Context) error {
	cancelled := h.bookUC.CancelScan(c.Request().Context())

	return response.Success(c, http.StatusOK, ScanCancelResponse{Cancelled: cancelled})
}
