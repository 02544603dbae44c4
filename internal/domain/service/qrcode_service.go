package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateDoctorContactQR generates a PNG QR code patients scan to reach a doctor
	GenerateDoctorContactQR(doctorID uuid.UUID) ([]byte, error)

	// ParseDoctorContactQR parses QR code data and returns the doctor ID
	ParseDoctorContactQR(qrData string) (uuid.UUID, error)
}
