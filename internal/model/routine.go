package model

import "time"

// DefaultRoutineDuration is assumed when a routine row carries no duration.
const DefaultRoutineDuration = 60

// RoutineEntry is a recurring weekly class slot.
type RoutineEntry struct {
	ID        int       `db:"id"           json:"id"`
	Day       string    `db:"day"          json:"day"`
	Time      string    `db:"time"         json:"time"` // "HH:MM", 24-hour, local wall clock
	Subject   string    `db:"subject"      json:"subject"`
	Teacher   *string   `db:"teacher"      json:"teacher"`
	Classroom *string   `db:"classroom"    json:"classroom"`
	Duration  int       `db:"duration"     json:"duration"` // minutes
	CreatedAt time.Time `db:"created_at"   json:"created_at"`
	UpdatedAt time.Time `db:"updated_at"   json:"updated_at"`
}
