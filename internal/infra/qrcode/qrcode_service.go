// Package qrcode generates and parses the QR codes used to share route listings.
package qrcode

import (
	"encoding/json"
	"fmt"

	"kaelo/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	RouteID string `json:"route_id"`
	Type    string `json:"type"`
}

// qrTypeRouteShare marks QR payloads that deep-link to a route listing.
const qrTypeRouteShare = "route_share"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateRouteShareQR generates a QR code deep-linking to a route listing
func (s *qrcodeService) GenerateRouteShareQR(routeID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		RouteID: routeID.String(),
		Type:    qrTypeRouteShare,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code as PNG bytes
	qrBytes, err := qrcode.Encode(string(jsonData), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	return qrBytes, nil
}

// ParseRouteShareQR parses QR code data and returns the route ID
func (s *qrcodeService) ParseRouteShareQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse QR code data: %w", err)
	}

	if data.Type != qrTypeRouteShare {
		return uuid.Nil, fmt.Errorf("unexpected QR code type: %s", data.Type)
	}

	routeID, err := uuid.Parse(data.RouteID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid route ID in QR code: %w", err)
	}

	return routeID, nil
}
