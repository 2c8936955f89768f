package impl

import (
	"context"
	"testing"
	"time"

	"smartpack/internal/domain/derive"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_GetDashboard(t *testing.T) {
	books := createTestBookService(t, time.Hour)
	service := NewDashboardService(books.dispatcher, books.service)
	ctx := context.Background()

	dashboard, err := service.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Len(t, dashboard.State.Books, 6)
	assert.Equal(t, derive.Evaluate(dashboard.State), dashboard.Status)
	assert.Equal(t, 2, dashboard.Status.UnreadCount)
	assert.True(t, dashboard.Status.NeedUmbrella)
	assert.False(t, dashboard.ScanInProgress)

	_, err = books.service.ScanForBooks(ctx)
	require.NoError(t, err)

	dashboard, err = service.GetDashboard(ctx)
	require.NoError(t, err)
	assert.True(t, dashboard.ScanInProgress)

	books.service.CancelScan(ctx)
}
