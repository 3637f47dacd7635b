package db

import (
	"github.com/rs/zerolog/log"

	"github.com/puic/quickxs-server/internal/model"
)

func CreateRoutine(day, startTime, subject string, teacher, classroom *string, duration int) (model.RoutineEntry, error) {
	var r model.RoutineEntry
	const q = `
	INSERT INTO routines (day, time, subject, teacher, classroom, duration, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, now(), now())
	RETURNING id, day, time, subject, teacher, classroom, duration, created_at, updated_at;`
	if err := DB.Get(&r, q, day, startTime, subject, teacher, classroom, duration); err != nil {
		log.Error().Err(err).Msg("CreateRoutine failed")
		return model.RoutineEntry{}, err
	}
	return r, nil
}

func GetRoutineByID(id int) (model.RoutineEntry, error) {
	var r model.RoutineEntry
	err := DB.Get(&r, `
	SELECT id, day, time, subject, teacher, classroom, duration, created_at, updated_at
	  FROM routines
	 WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("routine_id", id).Msg("GetRoutineByID failed")
	}
	return r, err
}

// ListRoutines returns the full weekly table ordered by day then time,
// the snapshot the projector consumes.
func ListRoutines() ([]model.RoutineEntry, error) {
	var out []model.RoutineEntry
	const q = `
	SELECT id, day, time, subject, teacher, classroom, duration, created_at, updated_at
	  FROM routines
	 ORDER BY day, time, id;`
	if err := DB.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListRoutines failed")
		return nil, err
	}
	return out, nil
}

func UpdateRoutine(id int, day, startTime, subject *string, teacher, classroom *string, duration *int) error {
	const q = `
	UPDATE routines
	   SET day       = COALESCE($2, day),
	       time      = COALESCE($3, time),
	       subject   = COALESCE($4, subject),
	       teacher   = COALESCE($5, teacher),
	       classroom = COALESCE($6, classroom),
	       duration  = COALESCE($7, duration),
	       updated_at = now()
	 WHERE id = $1;`
	_, err := DB.Exec(q, id, day, startTime, subject, teacher, classroom, duration)
	if err != nil {
		log.Error().Err(err).Int("routine_id", id).Msg("UpdateRoutine failed")
	}
	return err
}

func DeleteRoutine(id int) error {
	_, err := DB.Exec(`DELETE FROM routines WHERE id = $1;`, id)
	if err != nil {
		log.Error().Err(err).Int("routine_id", id).Msg("DeleteRoutine failed")
	}
	return err
}
