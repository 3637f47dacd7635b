package packets

type RoutineResponse struct {
	ID        int     `json:"id"`
	Day       string  `json:"day"`
	Time      string  `json:"time"`
	Subject   string  `json:"subject"`
	Teacher   *string `json:"teacher"`
	Classroom *string `json:"classroom"`
	Duration  int     `json:"duration"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type EventResponse struct {
	ID          int     `json:"id"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Name        string  `json:"name"`
	Info        *string `json:"info"`
	EventType   string  `json:"event_type"`
	Priority    *string `json:"priority"`
	IsCompleted bool    `json:"is_completed"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type LinkResponse struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	URL      string  `json:"url"`
	Category *string `json:"category"`
}

type SettingsResponse struct {
	Enabled bool    `json:"enabled"`
	Timings []int64 `json:"timings"`
	Sound   bool    `json:"sound"`
	Vibrate bool    `json:"vibrate"`
}
