// Package projector derives the now/next/progress view from routine and
// event snapshots. It is stateless and safe to call from any goroutine;
// inputs are read-only snapshots and every call returns fresh values.
package projector

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/puic/quickxs-server/internal/model"
	"github.com/puic/quickxs-server/internal/timeutil"
)

// sortedEntry pairs a routine with its parsed start minute so the time
// string is parsed once per pass.
type sortedEntry struct {
	routine model.RoutineEntry
	start   int
}

// todayEntries filters routines to the given weekday, drops entries whose
// time does not parse, and sorts the rest by start minute. The sort is
// stable so duplicate start times keep insertion order.
func todayEntries(routines []model.RoutineEntry, day string) []sortedEntry {
	entries := make([]sortedEntry, 0, len(routines))
	for _, r := range routines {
		if r.Day != day {
			continue
		}
		start, err := timeutil.TimeToMinutes(r.Time)
		if err != nil {
			log.Warn().Err(err).Int("routine_id", r.ID).Msg("skipping routine with malformed time")
			continue
		}
		entries = append(entries, sortedEntry{routine: r, start: start})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].start < entries[j].start
	})
	return entries
}

func duration(r model.RoutineEntry) int {
	if r.Duration <= 0 {
		return model.DefaultRoutineDuration
	}
	return r.Duration
}

func classInfo(e sortedEntry, nowMin int, status model.ClassStatus) *model.ClassInfo {
	d := duration(e.routine)
	return &model.ClassInfo{
		RoutineID:    e.routine.ID,
		Subject:      e.routine.Subject,
		Teacher:      e.routine.Teacher,
		Classroom:    e.routine.Classroom,
		StartTime:    e.routine.Time,
		EndTime:      timeutil.MinutesToTime(e.start + d),
		Duration:     d,
		MinutesUntil: e.start - nowMin,
		Status:       status,
	}
}

// Project computes the full derived view for one instant. It never fails:
// malformed rows are skipped and empty inputs produce an empty projection.
func Project(routines []model.RoutineEntry, events []model.EventEntry, now time.Time) model.Projection {
	today := todayEntries(routines, timeutil.DayName(now))
	nowMin := timeutil.NowMinutes(now)

	p := model.Projection{
		Progress:  dailyProgress(today, nowMin),
		NextEvent: nextEvent(events, now),
	}

	// First entry whose window contains now wins; overlapping routines are
	// tolerated, not validated.
	for _, e := range today {
		if nowMin >= e.start && nowMin < e.start+duration(e.routine) {
			p.CurrentClass = classInfo(e, nowMin, model.StatusNow)
			break
		}
	}

	for _, e := range today {
		if e.start > nowMin {
			status := model.StatusNext
			if p.CurrentClass != nil {
				status = model.StatusUpcoming
			}
			p.NextClass = classInfo(e, nowMin, status)
			break
		}
	}

	return p
}

func dailyProgress(today []sortedEntry, nowMin int) model.DailyProgress {
	total := len(today)
	if total == 0 {
		return model.DailyProgress{}
	}
	completed := 0
	for _, e := range today {
		if e.start+duration(e.routine) <= nowMin {
			completed++
		}
	}
	return model.DailyProgress{
		Completed:  completed,
		Total:      total,
		Percentage: completed * 100 / total,
	}
}

// nextEvent returns the earliest non-completed event dated today or later.
// Comparison is at day granularity: an earlier-today event still counts.
func nextEvent(events []model.EventEntry, now time.Time) *model.EventEntry {
	todayDate := timeutil.DateString(now)
	var best *model.EventEntry
	for i := range events {
		e := events[i]
		if e.IsCompleted {
			continue
		}
		if _, err := timeutil.DaysUntil(e.Date, now); err != nil {
			log.Warn().Err(err).Int("event_id", e.ID).Msg("skipping event with malformed date")
			continue
		}
		if e.Date < todayDate {
			continue
		}
		// Strict comparison keeps the first entry on (date, time) ties.
		if best == nil || less(e, *best) {
			best = &events[i]
		}
	}
	return best
}

func less(a, b model.EventEntry) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	return a.Time < b.Time
}

// TodayClasses returns today's ordered class list with per-entry status,
// the shape the dashboard list and the widgets render directly.
func TodayClasses(routines []model.RoutineEntry, now time.Time) []model.TodayClass {
	today := todayEntries(routines, timeutil.DayName(now))
	nowMin := timeutil.NowMinutes(now)

	out := make([]model.TodayClass, 0, len(today))
	for _, e := range today {
		d := duration(e.routine)
		end := e.start + d
		out = append(out, model.TodayClass{
			RoutineEntry: e.routine,
			EndTime:      timeutil.MinutesToTime(end),
			MinutesUntil: e.start - nowMin,
			IsNow:        nowMin >= e.start && nowMin < end,
			IsCompleted:  nowMin >= end,
		})
	}
	return out
}

// FreePeriods finds gaps of at least an hour between consecutive classes
// in today's schedule.
func FreePeriods(routines []model.RoutineEntry, now time.Time) []model.FreePeriod {
	today := todayEntries(routines, timeutil.DayName(now))
	if len(today) < 2 {
		return nil
	}

	var gaps []model.FreePeriod
	for i := 0; i < len(today)-1; i++ {
		end := today[i].start + duration(today[i].routine)
		gap := today[i+1].start - end
		if gap >= 60 {
			gaps = append(gaps, model.FreePeriod{
				Start:    timeutil.MinutesToTime(end),
				End:      today[i+1].routine.Time,
				Duration: gap,
			})
		}
	}
	return gaps
}

// UpcomingEvents lists non-completed events dated today or later, earliest
// first, decorated with countdown fields. limit <= 0 means no limit.
func UpcomingEvents(events []model.EventEntry, now time.Time, limit int) []model.UpcomingEvent {
	type decorated struct {
		event model.EventEntry
		days  int
	}

	pending := make([]decorated, 0, len(events))
	for _, e := range events {
		if e.IsCompleted {
			continue
		}
		days, err := timeutil.DaysUntil(e.Date, now)
		if err != nil {
			log.Warn().Err(err).Int("event_id", e.ID).Msg("skipping event with malformed date")
			continue
		}
		if days < 0 {
			continue
		}
		pending = append(pending, decorated{event: e, days: days})
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return less(pending[i].event, pending[j].event)
	})

	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}

	out := make([]model.UpcomingEvent, 0, len(pending))
	for _, d := range pending {
		out = append(out, model.UpcomingEvent{
			EventEntry: d.event,
			DaysUntil:  d.days,
			IsUrgent:   d.days >= 0 && d.days < 2,
		})
	}
	return out
}
