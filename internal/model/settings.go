package model

import (
	"time"

	"github.com/lib/pq"
)

// NotificationSettings controls class reminders for one user. Timings holds
// lead minutes before class start, e.g. [10, 2].
type NotificationSettings struct {
	UserID    int           `db:"user_id"   json:"user_id"`
	Enabled   bool          `db:"enabled"   json:"enabled"`
	Timings   pq.Int64Array `db:"timings"   json:"timings"`
	Sound     bool          `db:"sound"     json:"sound"`
	Vibrate   bool          `db:"vibrate"   json:"vibrate"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`
}

// DefaultNotificationSettings is what a user gets before saving anything.
func DefaultNotificationSettings(userID int) NotificationSettings {
	return NotificationSettings{
		UserID:  userID,
		Enabled: true,
		Timings: pq.Int64Array{10, 2},
		Sound:   true,
		Vibrate: true,
	}
}
