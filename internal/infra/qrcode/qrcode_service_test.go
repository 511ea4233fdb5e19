package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateRouteShareQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	routeID := uuid.New()

	qrBytes, err := service.GenerateRouteShareQR(routeID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseRouteShareQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	routeID := uuid.New()

	data := QRCodeData{
		RouteID: routeID.String(),
		Type:    "route_share",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseRouteShareQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, routeID, parsedID)
}

func TestQRCodeService_ParseRouteShareQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name   string
		qrData string
	}{
		{"Not JSON", "not-json-at-all"},
		{"Wrong type", `{"route_id":"` + uuid.New().String() + `","type":"subscription"}`},
		{"Bad route ID", `{"route_id":"not-a-uuid","type":"route_share"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsedID, err := service.ParseRouteShareQR(tt.qrData)
			assert.Error(t, err)
			assert.Equal(t, uuid.Nil, parsedID)
		})
	}
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")
	routeID := uuid.New()

	// The encoded payload itself must parse back to the same route.
	data := QRCodeData{RouteID: routeID.String(), Type: "route_share"}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseRouteShareQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, routeID, parsedID)
}
