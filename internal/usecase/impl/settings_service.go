package impl

import (
	"context"
	"log/slog"

	"smartpack/config"
	deliverycontext "smartpack/internal/delivery/context"
	"smartpack/internal/domain/entity"
	domainerrors "smartpack/internal/domain/errors"
	"smartpack/internal/domain/event"
	"smartpack/internal/domain/service"
	"smartpack/internal/errors"
	"smartpack/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type settingsService struct {
	dispatcher *Dispatcher
	qrcode     service.QRCodeService
	defaults   entity.Settings
	deviceID   uuid.UUID
	logger     *slog.Logger
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx
type SettingsServiceParams struct {
	fx.In

	Config     *config.Config
	Dispatcher *Dispatcher
	QRCode     service.QRCodeService
	Logger     *slog.Logger
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(params SettingsServiceParams) (usecase.SettingsUsecase, error) {
	deviceID, err := pairingDeviceID(params.Config.QRCode)
	if err != nil {
		return nil, err
	}

	return &settingsService{
		dispatcher: params.Dispatcher,
		qrcode:     params.QRCode,
		defaults:   DefaultSettings(params.Config),
		deviceID:   deviceID,
		logger:     params.Logger,
	}, nil
}

// DefaultSettings returns the factory settings with the configured thresholds.
func DefaultSettings(cfg *config.Config) entity.Settings {
	settings := entity.DefaultSettings()
	settings.MaxWeightKg = cfg.Thresholds.MaxWeightKg
	settings.LowBatteryThreshold = cfg.Thresholds.LowBatteryPercent

	return settings.Normalize()
}

func pairingDeviceID(cfg *config.QRCodeConfig) (uuid.UUID, error) {
	if cfg == nil || cfg.DeviceID == "" {
		return uuid.New(), nil
	}

	id, err := uuid.Parse(cfg.DeviceID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid qrcode.deviceId")
	}

	return id, nil
}

func (s *settingsService) GetSettings(ctx context.Context) (entity.Settings, error) {
	return s.dispatcher.Store().Settings(ctx)
}

func (s *settingsService) UpdateSettings(ctx context.Context, patch usecase.SettingsPatch) (entity.Settings, error) {
	result, err := s.dispatcher.DispatchDecided(ctx, func(state entity.State) ([]event.Event, error) {
		return []event.Event{event.SettingsChanged{
			Settings:   applyPatch(state.Settings, patch),
			OccurredAt: s.dispatcher.Now(),
		}}, nil
	})
	if err != nil {
		return entity.Settings{}, err
	}

	return result.After.Settings, nil
}

func applyPatch(settings entity.Settings, patch usecase.SettingsPatch) entity.Settings {
	if patch.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *patch.NotificationsEnabled
	}
	if patch.DarkMode != nil {
		settings.DarkMode = *patch.DarkMode
	}
	if patch.AutoScanBooks != nil {
		settings.AutoScanBooks = *patch.AutoScanBooks
	}
	if patch.BluetoothEnabled != nil {
		settings.BluetoothEnabled = *patch.BluetoothEnabled
	}
	if patch.MaxWeightKg != nil {
		settings.MaxWeightKg = *patch.MaxWeightKg
	}
	if patch.LowBatteryThreshold != nil {
		settings.LowBatteryThreshold = *patch.LowBatteryThreshold
	}

	return settings.Normalize()
}

func (s *settingsService) UpdateThreshold(ctx context.Context, kind entity.ThresholdKind, value float64) (entity.Settings, error) {
	if _, _, ok := kind.Bounds(); !ok {
		return entity.Settings{}, errors.WithStack(domainerrors.ErrUnknownThreshold.WithDetails(string(kind)))
	}

	result, err := s.dispatcher.Dispatch(ctx, event.ThresholdUpdated{
		Kind:       kind,
		Value:      value,
		OccurredAt: s.dispatcher.Now(),
	})
	if err != nil {
		return entity.Settings{}, err
	}

	return result.After.Settings, nil
}

func (s *settingsService) ResetSettings(ctx context.Context) (entity.Settings, error) {
	result, err := s.dispatcher.Dispatch(ctx, event.SettingsChanged{
		Settings:   s.defaults,
		OccurredAt: s.dispatcher.Now(),
	})
	if err != nil {
		return entity.Settings{}, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("[SettingsService] Settings restored to defaults")

	return result.After.Settings, nil
}

func (s *settingsService) PairingQR(ctx context.Context) ([]byte, error) {
	png, err := s.qrcode.GeneratePairingQR(s.deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "generate pairing QR")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("[SettingsService] Pairing QR generated",
		slog.String("device_id", s.deviceID.String()),
	)

	return png, nil
}
