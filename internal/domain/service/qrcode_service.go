package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateRouteShareQR generates a QR code deep-linking to a route listing
	GenerateRouteShareQR(routeID uuid.UUID) ([]byte, error)

	// ParseRouteShareQR parses QR code data and returns the route ID
	ParseRouteShareQR(qrData string) (uuid.UUID, error)
}
