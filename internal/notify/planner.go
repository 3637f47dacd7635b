package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/puic/quickxs-server/internal/model"
	"github.com/puic/quickxs-server/internal/timeutil"
)

const (
	// Class reminders beyond this horizon wait for the next replan.
	classLookahead = 12 * time.Hour
	// Event reminders look further out.
	eventLookahead = 7 * 24 * time.Hour
	// Leads at or under this many minutes make a class reminder urgent.
	urgentClassLead = 5
	// Local hour of the morning-of event reminder.
	morningHour = 7
	// Non-urgent notifications auto-dismiss after this long.
	defaultDismiss = 10 * time.Second
)

// eventTiers are the fixed lead times before an event instant. The
// shortest tier fires urgent.
var eventTiers = []struct {
	lead  time.Duration
	label string
}{
	{24 * time.Hour, "1d"},
	{3 * time.Hour, "3h"},
	{30 * time.Minute, "30m"},
}

// Planner owns the outstanding reminder timers. Replan is a full replace:
// every previously scheduled timer is cancelled before new ones are set,
// so planning twice with the same inputs leaves one live schedule.
type Planner struct {
	sink  Sink
	clock Clock

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewPlanner(sink Sink, clock Clock) *Planner {
	if clock == nil {
		clock = SystemClock
	}
	return &Planner{
		sink:   sink,
		clock:  clock,
		timers: make(map[string]*time.Timer),
	}
}

// Replan rebuilds the schedule from scratch. It never fails: entries that
// do not parse are skipped and disabled settings plan an empty schedule.
func (p *Planner) Replan(routines []model.RoutineEntry, events []model.EventEntry, settings model.NotificationSettings) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelLocked()

	if !settings.Enabled {
		log.Debug().Msg("notifications disabled, schedule cleared")
		return
	}

	now := p.clock.Now()
	p.planClasses(routines, settings, now)
	p.planEvents(events, settings, now)

	log.Info().Int("timers", len(p.timers)).Msg("reminder schedule rebuilt")
}

// CancelAll clears every pending reminder.
func (p *Planner) CancelAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelLocked()
}

// Pending reports how many reminders are currently scheduled.
func (p *Planner) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.timers)
}

func (p *Planner) cancelLocked() {
	for key, t := range p.timers {
		t.Stop()
		delete(p.timers, key)
	}
}

func (p *Planner) planClasses(routines []model.RoutineEntry, settings model.NotificationSettings, now time.Time) {
	today := timeutil.DayName(now)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, r := range routines {
		if r.Day != today {
			continue
		}
		start, err := timeutil.TimeToMinutes(r.Time)
		if err != nil {
			log.Warn().Err(err).Int("routine_id", r.ID).Msg("not scheduling routine with malformed time")
			continue
		}
		for _, timing := range settings.Timings {
			lead := int(timing)
			fireAt := midnight.Add(time.Duration(start-lead) * time.Minute)
			delay := fireAt.Sub(now)
			if delay <= 0 || delay >= classLookahead {
				continue
			}
			key := fmt.Sprintf("%d-%dmin", r.ID, lead)
			p.scheduleLocked(key, delay, classNotification(r, lead, settings))
		}
	}
}

func (p *Planner) planEvents(events []model.EventEntry, settings model.NotificationSettings, now time.Time) {
	for _, e := range events {
		if e.IsCompleted {
			continue
		}
		startMin, err := timeutil.TimeToMinutes(e.Time)
		if err != nil {
			log.Warn().Err(err).Int("event_id", e.ID).Msg("not scheduling event with malformed time")
			continue
		}
		day, err := time.ParseInLocation("2006-01-02", e.Date, now.Location())
		if err != nil {
			log.Warn().Err(err).Int("event_id", e.ID).Msg("not scheduling event with malformed date")
			continue
		}
		occurs := day.Add(time.Duration(startMin) * time.Minute)

		for _, tier := range eventTiers {
			delay := occurs.Add(-tier.lead).Sub(now)
			if delay <= 0 || delay >= eventLookahead {
				continue
			}
			key := fmt.Sprintf("event-%d-%s", e.ID, tier.label)
			urgent := e.Urgent() || tier.label == "30m"
			p.scheduleLocked(key, delay, eventNotification(e, tier.label, urgent, settings))
		}

		// Morning-of reminder at a fixed local hour.
		morning := time.Date(day.Year(), day.Month(), day.Day(), morningHour, 0, 0, 0, now.Location())
		if delay := morning.Sub(now); delay > 0 && delay < eventLookahead {
			key := fmt.Sprintf("event-%d-morning", e.ID)
			p.scheduleLocked(key, delay, eventNotification(e, "morning", e.Urgent(), settings))
		}
	}
}

// scheduleLocked registers one timer; the caller holds the mutex.
func (p *Planner) scheduleLocked(key string, delay time.Duration, n Notification) {
	p.timers[key] = time.AfterFunc(delay, func() {
		p.mu.Lock()
		delete(p.timers, key)
		p.mu.Unlock()

		p.sink.Show(n)
	})
	log.Debug().Str("key", key).Dur("delay", delay).Msg("reminder scheduled")
}

func classNotification(r model.RoutineEntry, lead int, settings model.NotificationSettings) Notification {
	urgent := lead <= urgentClassLead

	title := "Upcoming Class"
	if urgent {
		title = "Class Starting Soon!"
	}

	plural := "s"
	if lead == 1 {
		plural = ""
	}
	body := fmt.Sprintf("%s starts in %d minute%s at %s", r.Subject, lead, plural, timeutil.Format12Hour(r.Time))
	if r.Classroom != nil {
		body += fmt.Sprintf(" in Room %s", *r.Classroom)
	}

	n := Notification{
		Title:   title,
		Body:    body,
		Tag:     fmt.Sprintf("class-%d", r.ID),
		Urgent:  urgent,
		Sound:   settings.Sound,
		Vibrate: settings.Vibrate,
	}
	if !urgent {
		n.DismissAfter = defaultDismiss
	}
	return n
}

func eventNotification(e model.EventEntry, tier string, urgent bool, settings model.NotificationSettings) Notification {
	title := fmt.Sprintf("%s Reminder", e.EventType)
	if tier == "morning" {
		title = fmt.Sprintf("Today: %s", e.Name)
	}

	body := fmt.Sprintf("%s on %s at %s", e.Name, e.Date, timeutil.Format12Hour(e.Time))
	if e.Info != nil {
		body += " - " + *e.Info
	}

	n := Notification{
		Title:   title,
		Body:    body,
		Tag:     fmt.Sprintf("event-%d", e.ID),
		Urgent:  urgent,
		Sound:   settings.Sound,
		Vibrate: settings.Vibrate,
	}
	if !urgent {
		n.DismissAfter = defaultDismiss
	}
	return n
}
