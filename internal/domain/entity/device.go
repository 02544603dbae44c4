// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DevicePlatform is the client platform a push device runs on.
type DevicePlatform string

const (
	DevicePlatformIOS     DevicePlatform = "ios"
	DevicePlatformAndroid DevicePlatform = "android"
	DevicePlatformWeb     DevicePlatform = "web"
)

// ParseDevicePlatform accepts a platform name in any case.
func ParseDevicePlatform(raw string) (DevicePlatform, bool) {
	switch p := DevicePlatform(strings.ToLower(strings.TrimSpace(raw))); p {
	case DevicePlatformIOS, DevicePlatformAndroid, DevicePlatformWeb:
		return p, true
	default:
		return "", false
	}
}

// UserDevice is a phone, tablet or browser of a patient or doctor that receives
// notification pushes through FCM. DeviceID is the client's own identifier and is
// unique per user; re-registering the same DeviceID rotates FCMToken.
type UserDevice struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FCMToken  string
	DeviceID  string
	Platform  string
	IsActive  bool // false once FCM reports the token dead or the owner signs the device out
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether the device belongs to the given account.
func (d *UserDevice) OwnedBy(userID uuid.UUID) bool {
	return d.UserID == userID
}
