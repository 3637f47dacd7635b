package db

import (
	"github.com/rs/zerolog/log"

	"github.com/puic/quickxs-server/internal/model"
)

func CreateEvent(date, startTime, name string, info *string, eventType string, priority *string) (model.EventEntry, error) {
	var e model.EventEntry
	const q = `
	INSERT INTO events (date, time, name, info, event_type, priority, is_completed, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, false, now(), now())
	RETURNING id, date, time, name, info, event_type, priority, is_completed, created_at, updated_at;`
	if err := DB.Get(&e, q, date, startTime, name, info, eventType, priority); err != nil {
		log.Error().Err(err).Msg("CreateEvent failed")
		return model.EventEntry{}, err
	}
	return e, nil
}

func GetEventByID(id int) (model.EventEntry, error) {
	var e model.EventEntry
	err := DB.Get(&e, `
	SELECT id, date, time, name, info, event_type, priority, is_completed, created_at, updated_at
	  FROM events
	 WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("event_id", id).Msg("GetEventByID failed")
	}
	return e, err
}

// ListEvents returns every event ordered by (date, time), completed ones
// included; projections filter those out themselves.
func ListEvents() ([]model.EventEntry, error) {
	var out []model.EventEntry
	const q = `
	SELECT id, date, time, name, info, event_type, priority, is_completed, created_at, updated_at
	  FROM events
	 ORDER BY date, time, id;`
	if err := DB.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListEvents failed")
		return nil, err
	}
	return out, nil
}

func UpdateEvent(id int, date, startTime, name, info, eventType, priority *string) error {
	const q = `
	UPDATE events
	   SET date       = COALESCE($2, date),
	       time       = COALESCE($3, time),
	       name       = COALESCE($4, name),
	       info       = COALESCE($5, info),
	       event_type = COALESCE($6, event_type),
	       priority   = COALESCE($7, priority),
	       updated_at = now()
	 WHERE id = $1;`
	_, err := DB.Exec(q, id, date, startTime, name, info, eventType, priority)
	if err != nil {
		log.Error().Err(err).Int("event_id", id).Msg("UpdateEvent failed")
	}
	return err
}

// SetEventCompleted flips the completion flag, the one field mutated
// outside full edits.
func SetEventCompleted(id int, completed bool) error {
	_, err := DB.Exec(`UPDATE events SET is_completed = $2, updated_at = now() WHERE id = $1;`, id, completed)
	if err != nil {
		log.Error().Err(err).Int("event_id", id).Msg("SetEventCompleted failed")
	}
	return err
}

func DeleteEvent(id int) error {
	_, err := DB.Exec(`DELETE FROM events WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("event_id", id).Msg("DeleteEvent failed")
	}
	return err
}
