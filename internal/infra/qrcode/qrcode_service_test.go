package qrcode

import (
	"encoding/json"
	"testing"

	"medlink/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, data []byte) {
	t.Helper()
	require.GreaterOrEqual(t, len(data), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data[:4])
}

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
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			require.NotNil(t, service)

			png, err := service.GenerateDoctorContactQR(uuid.New())
			require.NoError(t, err)
			assertPNG(t, png)
		})
	}
}

func TestNewQRCodeServiceFromConfig(t *testing.T) {
	service := NewQRCodeServiceFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}})

	png, err := service.GenerateDoctorContactQR(uuid.New())
	require.NoError(t, err)
	assertPNG(t, png)

	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{}))
}

func TestQRCodeService_ParseDoctorContactQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	doctorID := uuid.New()

	payload, err := json.Marshal(QRCodeData{DoctorID: doctorID.String(), Type: "contact"})
	require.NoError(t, err)

	parsed, err := service.ParseDoctorContactQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, doctorID, parsed)
}

func TestQRCodeService_ParseDoctorContactQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name string
		data string
	}{
		{"not json", "not-json"},
		{"wrong type", `{"doctor_id":"` + uuid.NewString() + `","type":"subscription"}`},
		{"bad id", `{"doctor_id":"nope","type":"contact"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := service.ParseDoctorContactQR(tt.data)
			assert.Error(t, err)
			assert.Equal(t, uuid.Nil, id)
		})
	}
}
