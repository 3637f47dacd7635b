package packets

type CreateRoutineRequest struct {
	Day       string  `json:"day" binding:"required"`
	Time      string  `json:"time" binding:"required"`
	Subject   string  `json:"subject" binding:"required"`
	Teacher   *string `json:"teacher"`
	Classroom *string `json:"classroom"`
	Duration  *int    `json:"duration"`
}

type UpdateRoutineRequest struct {
	Day       *string `json:"day"`
	Time      *string `json:"time"`
	Subject   *string `json:"subject"`
	Teacher   *string `json:"teacher"`
	Classroom *string `json:"classroom"`
	Duration  *int    `json:"duration"`
}

type CreateEventRequest struct {
	Date      string  `json:"date" binding:"required"`
	Time      string  `json:"time" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Info      *string `json:"info"`
	EventType string  `json:"event_type" binding:"required"`
	Priority  *string `json:"priority"`
}

type UpdateEventRequest struct {
	Date      *string `json:"date"`
	Time      *string `json:"time"`
	Name      *string `json:"name"`
	Info      *string `json:"info"`
	EventType *string `json:"event_type"`
	Priority  *string `json:"priority"`
}

// CompleteEventRequest toggles the completion flag; omitting the body
// marks the event completed.
type CompleteEventRequest struct {
	Completed *bool `json:"completed"`
}

type CreateLinkRequest struct {
	Name     string  `json:"name" binding:"required"`
	URL      string  `json:"url" binding:"required,url"`
	Category *string `json:"category"`
}

type UpdateLinkRequest struct {
	Name     *string `json:"name"`
	URL      *string `json:"url"`
	Category *string `json:"category"`
}

type UpdateSettingsRequest struct {
	Enabled bool    `json:"enabled"`
	Timings []int64 `json:"timings" binding:"required"`
	Sound   bool    `json:"sound"`
	Vibrate bool    `json:"vibrate"`
}
