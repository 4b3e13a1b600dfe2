package content

import (
	"time"

	"portfolio/constants"
)

type CertificationStatus string

const (
	StatusActive       CertificationStatus = "active"
	StatusExpiringSoon CertificationStatus = "expiring-soon"
	StatusExpired      CertificationStatus = "expired"
)

// CertificationStatusAt classifies a certification by its expiry date
// relative to now. A certification without expiry never expires.
func CertificationStatusAt(expiry *time.Time, now time.Time) CertificationStatus {
	if expiry == nil || expiry.IsZero() {
		return StatusActive
	}
	if !expiry.After(now) {
		return StatusExpired
	}
	if !expiry.After(now.AddDate(0, constants.EXPIRING_SOON_MONTHS, 0)) {
		return StatusExpiringSoon
	}
	return StatusActive
}

// IsActive is true for both active and expiring-soon certifications.
func (s CertificationStatus) IsActive() bool {
	return s != StatusExpired
}

func (s CertificationStatus) Label() string {
	switch s {
	case StatusExpired:
		return "Expired"
	case StatusExpiringSoon:
		return "Expiring soon"
	default:
		return "Active"
	}
}
