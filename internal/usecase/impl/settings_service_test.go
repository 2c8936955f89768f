package impl

import (
	"context"
	"testing"

	"smartpack/config"
	"smartpack/internal/domain/entity"
	domainerrors "smartpack/internal/domain/errors"
	mockService "smartpack/internal/mocks/service"
	"smartpack/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDeviceID = uuid.MustParse("6f1c2a4e-8d3b-4c55-9a1e-2b7d9e0f4a11")

type settingsServiceFixtures struct {
	dispatcherFixtures
	service usecase.SettingsUsecase
	qrcode  *mockService.MockQRCodeService
}

func createTestSettingsService(t *testing.T, cfg *config.Config) settingsServiceFixtures {
	t.Helper()

	fx := createTestDispatcher(t)
	qrcode := mockService.NewMockQRCodeService(t)

	service, err := NewSettingsService(SettingsServiceParams{
		Config:     cfg,
		Dispatcher: fx.dispatcher,
		QRCode:     qrcode,
		Logger:     newDiscardLogger(),
	})
	require.NoError(t, err)

	return settingsServiceFixtures{
		dispatcherFixtures: fx,
		service:            service,
		qrcode:             qrcode,
	}
}

func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestSettingsService_UpdateThresholdClamps(t *testing.T) {
	tests := []struct {
		name          string
		kind          entity.ThresholdKind
		value         float64
		wantMaxWeight float64
		wantLowBatt   float64
	}{
		{name: "max weight in range", kind: entity.ThresholdMaxWeight, value: 7.5, wantMaxWeight: 7.5, wantLowBatt: 20},
		{name: "max weight above range", kind: entity.ThresholdMaxWeight, value: 50, wantMaxWeight: 10, wantLowBatt: 20},
		{name: "max weight below range", kind: entity.ThresholdMaxWeight, value: 0, wantMaxWeight: 1, wantLowBatt: 20},
		{name: "low battery above range", kind: entity.ThresholdLowBattery, value: 80, wantMaxWeight: 5, wantLowBatt: 50},
		{name: "low battery below range", kind: entity.ThresholdLowBattery, value: 1, wantMaxWeight: 5, wantLowBatt: 5},
		{name: "max weight snaps up to step", kind: entity.ThresholdMaxWeight, value: 7.3, wantMaxWeight: 7.5, wantLowBatt: 20},
		{name: "max weight snaps down to step", kind: entity.ThresholdMaxWeight, value: 7.2, wantMaxWeight: 7, wantLowBatt: 20},
		{name: "low battery snaps to step", kind: entity.ThresholdLowBattery, value: 23, wantMaxWeight: 5, wantLowBatt: 25},
		{name: "low battery snaps down to step", kind: entity.ThresholdLowBattery, value: 21, wantMaxWeight: 5, wantLowBatt: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSettingsService(t, newTestConfig())
			fx.expectPublish()

			settings, err := fx.service.UpdateThreshold(context.Background(), tt.kind, tt.value)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantMaxWeight, settings.MaxWeightKg, 1e-9)
			assert.InDelta(t, tt.wantLowBatt, settings.LowBatteryThreshold, 1e-9)
		})
	}
}

func TestSettingsService_UnknownThreshold(t *testing.T) {
	fx := createTestSettingsService(t, newTestConfig())

	_, err := fx.service.UpdateThreshold(context.Background(), "volume", 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownThreshold)
}

func TestSettingsService_LoweringLimitRaisesWeightAlert(t *testing.T) {
	fx := createTestSettingsService(t, newTestConfig())
	fx.expectPublish()
	ctx := context.Background()

	_, err := fx.service.UpdateThreshold(ctx, entity.ThresholdMaxWeight, 4)
	require.NoError(t, err)

	notifications, err := fx.store.Notifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, titleWeightAlert, notifications[0].Title)
	assert.Equal(t, "Backpack weight (4.2kg) exceeds recommended limit of 4kg", notifications[0].Message)
}

func TestSettingsService_UpdateSettingsPatch(t *testing.T) {
	fx := createTestSettingsService(t, newTestConfig())

	settings, err := fx.service.UpdateSettings(context.Background(), usecase.SettingsPatch{
		DarkMode:            boolPtr(true),
		LowBatteryThreshold: floatPtr(60),
	})
	require.NoError(t, err)
	assert.True(t, settings.DarkMode)
	assert.InDelta(t, 50.0, settings.LowBatteryThreshold, 1e-9)
	assert.True(t, settings.NotificationsEnabled)
	assert.True(t, settings.AutoScanBooks)
	assert.True(t, settings.BluetoothEnabled)
	assert.InDelta(t, 5.0, settings.MaxWeightKg, 1e-9)
}

func TestSettingsService_ResetRestoresConfiguredDefaults(t *testing.T) {
	cfg := newTestConfig()
	cfg.Thresholds.MaxWeightKg = 7
	cfg.Thresholds.LowBatteryPercent = 15
	fx := createTestSettingsService(t, cfg)
	ctx := context.Background()

	_, err := fx.service.UpdateSettings(ctx, usecase.SettingsPatch{
		NotificationsEnabled: boolPtr(false),
		DarkMode:             boolPtr(true),
	})
	require.NoError(t, err)

	settings, err := fx.service.ResetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, settings.NotificationsEnabled)
	assert.False(t, settings.DarkMode)
	assert.InDelta(t, 7.0, settings.MaxWeightKg, 1e-9)
	assert.InDelta(t, 15.0, settings.LowBatteryThreshold, 1e-9)

	stored, err := fx.service.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, stored)
}

func TestSettingsService_PairingQR(t *testing.T) {
	cfg := newTestConfig()
	cfg.QRCode = &config.QRCodeConfig{DeviceID: testDeviceID.String()}
	fx := createTestSettingsService(t, cfg)

	png := []byte{0x89, 'P', 'N', 'G'}
	fx.qrcode.EXPECT().GeneratePairingQR(testDeviceID).Return(png, nil).Once()

	got, err := fx.service.PairingQR(context.Background())
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestNewSettingsService_InvalidDeviceID(t *testing.T) {
	cfg := newTestConfig()
	cfg.QRCode = &config.QRCodeConfig{DeviceID: "backpack-1"}

	_, err := NewSettingsService(SettingsServiceParams{
		Config:     cfg,
		Dispatcher: createTestDispatcher(t).dispatcher,
		QRCode:     mockService.NewMockQRCodeService(t),
		Logger:     newDiscardLogger(),
	})
	assert.Error(t, err)
}

func TestDefaultSettings_ClampsConfiguredThresholds(t *testing.T) {
	cfg := newTestConfig()
	cfg.Thresholds.MaxWeightKg = 25
	cfg.Thresholds.LowBatteryPercent = 2

	settings := DefaultSettings(cfg)
	assert.InDelta(t, 10.0, settings.MaxWeightKg, 1e-9)
	assert.InDelta(t, 5.0, settings.LowBatteryThreshold, 1e-9)
	assert.True(t, settings.NotificationsEnabled)
}
