package qrcode

import (
	"strings"

	"smartpack/internal/domain/service"
	"smartpack/internal/errors"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/skip2/go-qrcode"
)

const pairingType = "pairing"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// PairingData is the payload encoded in a pairing QR code
type PairingData struct {
	DeviceID string `json:"device_id"`
	Type     string `json:"type"`
	URL      string `json:"url,omitempty"` // Deep link the phone app opens, when configured
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GeneratePairingQR encodes the pairing payload for deviceID as a PNG
func (s *qrcodeService) GeneratePairingQR(deviceID uuid.UUID) ([]byte, error) {
	data := PairingData{
		DeviceID: deviceID.String(),
		Type:     pairingType,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "?device=" + data.DeviceID
	}

	payload, err := jsoniter.ConfigFastest.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(payload), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return png, nil
}

// ParsePairingQR parses scanned QR code text and returns the device ID
func (s *qrcodeService) ParsePairingQR(qrData string) (uuid.UUID, error) {
	var data PairingData
	if err := jsoniter.ConfigFastest.UnmarshalFromString(qrData, &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != pairingType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	deviceID, err := uuid.Parse(data.DeviceID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse device ID")
	}

	return deviceID, nil
}
