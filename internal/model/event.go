package model

import "time"

type EventPriority string

const (
	PriorityUrgent EventPriority = "urgent"
	PriorityHigh   EventPriority = "high"
	PriorityNormal EventPriority = "normal"
	PriorityLow    EventPriority = "low"
)

// EventEntry is a single dated occurrence: a test, deadline or announcement.
type EventEntry struct {
	ID          int       `db:"id"           json:"id"`
	Date        string    `db:"date"         json:"date"` // "YYYY-MM-DD"
	Time        string    `db:"time"         json:"time"` // "HH:MM"
	Name        string    `db:"name"         json:"name"`
	Info        *string   `db:"info"         json:"info"`
	EventType   string    `db:"event_type"   json:"event_type"` // CT, Lab, Assignment, ...
	Priority    *string   `db:"priority"     json:"priority"`
	IsCompleted bool      `db:"is_completed" json:"is_completed"`
	CreatedAt   time.Time `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"   json:"updated_at"`
}

// Urgent reports whether the event should be treated as urgent by reminders.
func (e EventEntry) Urgent() bool {
	return e.Priority != nil && EventPriority(*e.Priority) == PriorityUrgent
}
