package qrcode

import (
	"testing"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngMagic(t *testing.T, data []byte) {
	t.Helper()

	require.GreaterOrEqual(t, len(data), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data[:4])
}

func TestQRCodeService_GeneratePairingQR(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		level string
	}{
		{"low correction", 128, "L"},
		{"medium correction", 256, "m"},
		{"high correction", 256, "Q"},
		{"highest correction", 512, "H"},
		{"unknown level and size fall back", 0, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.level, "smartpack://pair")

			png, err := service.GeneratePairingQR(uuid.New())
			require.NoError(t, err)
			pngMagic(t, png)
		})
	}
}

func TestQRCodeService_ParsePairingQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")
	deviceID := uuid.New()

	payload, err := jsoniter.ConfigFastest.MarshalToString(PairingData{
		DeviceID: deviceID.String(),
		Type:     "pairing",
		URL:      "smartpack://pair?device=" + deviceID.String(),
	})
	require.NoError(t, err)

	parsed, err := service.ParsePairingQR(payload)
	require.NoError(t, err)
	assert.Equal(t, deviceID, parsed)
}

func TestQRCodeService_ParsePairingQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{"not json", "invalid json", "failed to unmarshal QR code data"},
		{"wrong type", `{"device_id":"` + uuid.NewString() + `","type":"subscription"}`, "invalid QR code type"},
		{"bad uuid", `{"device_id":"not-a-uuid","type":"pairing"}`, "failed to parse device ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParsePairingQR(tt.payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
