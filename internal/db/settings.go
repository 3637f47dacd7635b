package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/puic/quickxs-server/internal/model"
)

// GetNotificationSettings returns the stored settings for a user, or the
// defaults when nothing has been saved yet.
func GetNotificationSettings(userID int) (model.NotificationSettings, error) {
	var s model.NotificationSettings
	err := DB.Get(&s, `
	SELECT user_id, enabled, timings, sound, vibrate, updated_at
	  FROM notification_settings
	 WHERE user_id = $1;`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultNotificationSettings(userID), nil
	}
	if err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("GetNotificationSettings failed")
		return model.NotificationSettings{}, err
	}
	return s, nil
}

func SaveNotificationSettings(s model.NotificationSettings) error {
	const q = `
	INSERT INTO notification_settings (user_id, enabled, timings, sound, vibrate, updated_at)
	VALUES ($1, $2, $3, $4, $5, now())
	ON CONFLICT (user_id) DO UPDATE
	   SET enabled = EXCLUDED.enabled,
	       timings = EXCLUDED.timings,
	       sound = EXCLUDED.sound,
	       vibrate = EXCLUDED.vibrate,
	       updated_at = now();`
	_, err := DB.Exec(q, s.UserID, s.Enabled, s.Timings, s.Sound, s.Vibrate)
	if err != nil {
		log.Error().Err(err).Int("user_id", s.UserID).Msg("SaveNotificationSettings failed")
	}
	return err
}
