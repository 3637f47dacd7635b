package model

// ClassStatus tags a projected class relative to the current instant.
type ClassStatus string

const (
	StatusNow      ClassStatus = "NOW"
	StatusNext     ClassStatus = "NEXT"
	StatusUpcoming ClassStatus = "UPCOMING"
)

// ClassInfo is a routine entry resolved against the clock. EndTime is
// recomputed on every evaluation, never stored.
type ClassInfo struct {
	RoutineID    int         `json:"routine_id"`
	Subject      string      `json:"subject"`
	Teacher      *string     `json:"teacher"`
	Classroom    *string     `json:"classroom"`
	StartTime    string      `json:"start_time"`
	EndTime      string      `json:"end_time"`
	Duration     int         `json:"duration"`
	MinutesUntil int         `json:"minutes_until"` // negative while in progress
	Status       ClassStatus `json:"status"`
}

// DailyProgress summarises how much of today's routine is behind us.
type DailyProgress struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// Projection is the derived now/next/progress view for a single instant.
type Projection struct {
	CurrentClass *ClassInfo    `json:"current_class"`
	NextClass    *ClassInfo    `json:"next_class"`
	Progress     DailyProgress `json:"progress"`
	NextEvent    *EventEntry   `json:"next_event"`
}

// TodayClass is one entry of the ordered today view used by the dashboard
// and the widgets.
type TodayClass struct {
	RoutineEntry
	EndTime      string `json:"end_time"`
	MinutesUntil int    `json:"minutes_until"`
	IsNow        bool   `json:"is_now"`
	IsCompleted  bool   `json:"is_completed"`
}

// FreePeriod is a gap between two consecutive classes.
type FreePeriod struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration int    `json:"duration"`
}

// UpcomingEvent decorates an event with countdown fields.
type UpcomingEvent struct {
	EventEntry
	DaysUntil int  `json:"days_until"`
	IsUrgent  bool `json:"is_urgent"`
}

// WidgetData is the JSON snapshot consumed by the home-screen widgets.
type WidgetData struct {
	CurrentClass   *ClassInfo      `json:"current_class"`
	NextClass      *ClassInfo      `json:"next_class"`
	TodayClasses   []TodayClass    `json:"today_classes"`
	TodayProgress  DailyProgress   `json:"today_progress"`
	NextEvent      *EventEntry     `json:"next_event"`
	UpcomingEvents []UpcomingEvent `json:"upcoming_events"`
	GeneratedAt    string          `json:"generated_at"`
}
