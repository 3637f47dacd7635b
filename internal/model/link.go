package model

import "time"

// Link is a quick-access link shown on the dashboard.
type Link struct {
	ID        int       `db:"id"           json:"id"`
	Name      string    `db:"name"         json:"name"`
	URL       string    `db:"url"          json:"url"`
	Category  *string   `db:"category"     json:"category"`
	CreatedAt time.Time `db:"created_at"   json:"created_at"`
}
