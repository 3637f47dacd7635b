// Seeds a fresh database with a sample weekly timetable and a few events
// so the dashboard has something to show on first boot.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/puic/quickxs-server/internal/db"
)

type seedRoutine struct {
	day       string
	time      string
	subject   string
	teacher   string
	classroom string
}

type seedEvent struct {
	date      string
	time      string
	name      string
	eventType string
	priority  string
}

var routines = []seedRoutine{
	{"Monday", "09:00", "Mathematics", "Mr. Rahman", "201"},
	{"Monday", "10:30", "Physics", "Ms. Akter", "Lab 2"},
	{"Monday", "13:00", "English", "Mr. Karim", "105"},
	{"Tuesday", "09:00", "Chemistry", "Ms. Akter", "Lab 1"},
	{"Tuesday", "11:00", "Biology", "Mr. Hossain", "Lab 1"},
	{"Wednesday", "09:00", "Mathematics", "Mr. Rahman", "201"},
	{"Wednesday", "10:30", "ICT", "Ms. Sultana", "Computer Lab"},
	{"Thursday", "09:00", "Physics", "Ms. Akter", "Lab 2"},
	{"Thursday", "13:00", "Bangla", "Mr. Islam", "105"},
	{"Sunday", "09:00", "English", "Mr. Karim", "105"},
	{"Sunday", "10:30", "Chemistry", "Ms. Akter", "Lab 1"},
}

var events = []seedEvent{
	{"2026-09-07", "10:00", "Physics Midterm", "Exam", "urgent"},
	{"2026-09-10", "14:00", "Science Fair Submission", "Assignment", "high"},
	{"2026-09-15", "09:00", "Math Quiz", "Exam", "normal"},
}

const seedDuration = 75

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}
	if err := db.Init(databaseURL); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	if err := db.RunMigrations(os.Getenv("MIGRATIONS_PATH")); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	existing, err := db.ListRoutines()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to inspect routines")
	}
	if len(existing) > 0 {
		log.Info().Int("routines", len(existing)).Msg("database already seeded, nothing to do")
		return
	}

	for _, r := range routines {
		teacher, classroom := r.teacher, r.classroom
		created, err := db.CreateRoutine(r.day, r.time, r.subject, &teacher, &classroom, seedDuration)
		if err != nil {
			log.Fatal().Err(err).Str("subject", r.subject).Msg("failed to seed routine")
		}
		log.Info().Int("id", created.ID).Str("day", created.Day).Str("subject", created.Subject).Msg("seeded routine")
	}

	for _, e := range events {
		priority := e.priority
		created, err := db.CreateEvent(e.date, e.time, e.name, nil, e.eventType, &priority)
		if err != nil {
			log.Fatal().Err(err).Str("name", e.name).Msg("failed to seed event")
		}
		log.Info().Int("id", created.ID).Str("name", created.Name).Msg("seeded event")
	}

	log.Info().Msg("seed complete")
}
