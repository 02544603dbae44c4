// Package qrcode renders the doctor contact QR codes patients scan to start a conversation.
package qrcode

import (
	"encoding/json"
	"fmt"

	"medlink/config"
	"medlink/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	contactType = "contact"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code payload
type QRCodeData struct {
	DoctorID string `json:"doctor_id"`
	Type     string `json:"type"`
}

// NewQRCodeServiceFromConfig builds the service from the qrcode config section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

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

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateDoctorContactQR generates a PNG QR code encoding the doctor's contact payload
func (s *qrcodeService) GenerateDoctorContactQR(doctorID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		DoctorID: doctorID.String(),
		Type:     contactType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseDoctorContactQR parses scanned QR code data and returns the doctor ID
func (s *qrcodeService) ParseDoctorContactQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != contactType {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	doctorID, err := uuid.Parse(data.DoctorID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse doctor ID: %w", err)
	}

	return doctorID, nil
}
