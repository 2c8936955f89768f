package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePairingQR generates the "Sync Device" QR code for a backpack
	GeneratePairingQR(deviceID uuid.UUID) ([]byte, error)

	// ParsePairingQR parses QR code data and returns the backpack device ID
	ParsePairingQR(qrData string) (uuid.UUID, error)
}
