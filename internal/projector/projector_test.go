package projector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/puic/quickxs-server/internal/model"
)

// Monday in local time at the given clock reading.
func monday(hour, min int) time.Time {
	return time.Date(2026, 1, 19, hour, min, 0, 0, time.Local)
}

func routine(day, start, subject string, duration int) model.RoutineEntry {
	return model.RoutineEntry{
		Day:      day,
		Time:     start,
		Subject:  subject,
		Duration: duration,
	}
}

func TestCurrentClassDuringWindow(t *testing.T) {
	routines := []model.RoutineEntry{routine("Monday", "11:30", "ML", 90)}

	p := Project(routines, nil, monday(12, 0))

	if assert.NotNil(t, p.CurrentClass) {
		assert.Equal(t, "ML", p.CurrentClass.Subject)
		assert.Equal(t, "13:00", p.CurrentClass.EndTime)
		assert.Equal(t, model.StatusNow, p.CurrentClass.Status)
	}
	assert.Nil(t, p.NextClass)
}

func TestNextClassBeforeWindow(t *testing.T) {
	routines := []model.RoutineEntry{routine("Monday", "11:30", "ML", 90)}

	p := Project(routines, nil, monday(10, 0))

	assert.Nil(t, p.CurrentClass)
	if assert.NotNil(t, p.NextClass) {
		assert.Equal(t, "ML", p.NextClass.Subject)
		assert.Equal(t, model.StatusNext, p.NextClass.Status)
		assert.Equal(t, 90, p.NextClass.MinutesUntil)
	}
}

func TestNextClassTaggedUpcomingWhileOneRuns(t *testing.T) {
	routines := []model.RoutineEntry{
		routine("Monday", "09:00", "DBMS", 60),
		routine("Monday", "11:00", "ML", 90),
	}

	p := Project(routines, nil, monday(9, 30))

	if assert.NotNil(t, p.CurrentClass) {
		assert.Equal(t, "DBMS", p.CurrentClass.Subject)
	}
	if assert.NotNil(t, p.NextClass) {
		assert.Equal(t, "ML", p.NextClass.Subject)
		assert.Equal(t, model.StatusUpcoming, p.NextClass.Status)
	}
}

func TestBoundaryInstants(t *testing.T) {
	routines := []model.RoutineEntry{routine("Monday", "11:30", "ML", 90)}

	// Exactly at start: current.
	p := Project(routines, nil, monday(11, 30))
	assert.NotNil(t, p.CurrentClass)

	// Exactly at end: over, counts as completed.
	p = Project(routines, nil, monday(13, 0))
	assert.Nil(t, p.CurrentClass)
	assert.Equal(t, model.DailyProgress{Completed: 1, Total: 1, Percentage: 100}, p.Progress)
}

func TestOverlappingRoutinesEarlierWins(t *testing.T) {
	routines := []model.RoutineEntry{
		routine("Monday", "10:00", "Second", 120),
		routine("Monday", "09:30", "First", 120),
	}

	p := Project(routines, nil, monday(10, 30))

	if assert.NotNil(t, p.CurrentClass) {
		assert.Equal(t, "First", p.CurrentClass.Subject)
	}
}

func TestEmptyDay(t *testing.T) {
	routines := []model.RoutineEntry{routine("Tuesday", "09:00", "OS", 60)}

	p := Project(routines, nil, monday(12, 0))

	assert.Nil(t, p.CurrentClass)
	assert.Nil(t, p.NextClass)
	assert.Equal(t, model.DailyProgress{}, p.Progress)
	assert.Equal(t, 0, p.Progress.Percentage)
}

func TestDailyProgress(t *testing.T) {
	routines := []model.RoutineEntry{
		routine("Monday", "08:00", "A", 60),
		routine("Monday", "09:00", "B", 60),
		routine("Monday", "14:00", "C", 60),
	}

	p := Project(routines, nil, monday(10, 30))

	assert.Equal(t, model.DailyProgress{Completed: 2, Total: 3, Percentage: 66}, p.Progress)
}

func TestMalformedTimeSkipped(t *testing.T) {
	routines := []model.RoutineEntry{
		routine("Monday", "08:00", "A", 60),
		routine("Monday", "9:xx", "Broken", 60),
		routine("Monday", "10:00", "B", 60),
	}

	p := Project(routines, nil, monday(8, 30))

	if assert.NotNil(t, p.CurrentClass) {
		assert.Equal(t, "A", p.CurrentClass.Subject)
	}
	if assert.NotNil(t, p.NextClass) {
		assert.Equal(t, "B", p.NextClass.Subject)
	}
	assert.Equal(t, 2, p.Progress.Total)
}

func TestZeroDurationFallsBackToDefault(t *testing.T) {
	routines := []model.RoutineEntry{routine("Monday", "11:30", "ML", 0)}

	p := Project(routines, nil, monday(12, 0))

	if assert.NotNil(t, p.CurrentClass) {
		assert.Equal(t, model.DefaultRoutineDuration, p.CurrentClass.Duration)
		assert.Equal(t, "12:30", p.CurrentClass.EndTime)
	}
}

func TestNextEventSkipsCompleted(t *testing.T) {
	events := []model.EventEntry{
		{ID: 1, Date: "2026-01-20", Time: "13:00", Name: "CT"},
		{ID: 2, Date: "2026-01-15", Time: "09:00", Name: "done", IsCompleted: true},
	}
	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.Local)

	p := Project(nil, events, now)

	if assert.NotNil(t, p.NextEvent) {
		assert.Equal(t, "2026-01-20", p.NextEvent.Date)
		assert.False(t, p.NextEvent.IsCompleted)
	}
}

func TestNextEventSameDayPastTimeStillCounts(t *testing.T) {
	events := []model.EventEntry{
		{ID: 1, Date: "2026-01-19", Time: "08:00", Name: "morning quiz"},
	}

	p := Project(nil, events, monday(18, 0))

	if assert.NotNil(t, p.NextEvent) {
		assert.Equal(t, 1, p.NextEvent.ID)
	}
}

func TestNextEventTieKeepsListOrder(t *testing.T) {
	events := []model.EventEntry{
		{ID: 1, Date: "2026-01-20", Time: "10:00", Name: "first"},
		{ID: 2, Date: "2026-01-20", Time: "10:00", Name: "second"},
	}

	p := Project(nil, events, monday(9, 0))

	if assert.NotNil(t, p.NextEvent) {
		assert.Equal(t, "first", p.NextEvent.Name)
	}
}

func TestNextEventMalformedDateSkipped(t *testing.T) {
	events := []model.EventEntry{
		{ID: 1, Date: "garbage", Time: "10:00", Name: "bad"},
		{ID: 2, Date: "2026-01-22", Time: "10:00", Name: "good"},
	}

	p := Project(nil, events, monday(9, 0))

	if assert.NotNil(t, p.NextEvent) {
		assert.Equal(t, "good", p.NextEvent.Name)
	}
}

func TestProjectIdempotent(t *testing.T) {
	routines := []model.RoutineEntry{
		routine("Monday", "08:00", "A", 60),
		routine("Monday", "11:30", "ML", 90),
	}
	events := []model.EventEntry{
		{ID: 1, Date: "2026-01-20", Time: "13:00", Name: "CT"},
	}
	now := monday(12, 0)

	assert.Equal(t, Project(routines, events, now), Project(routines, events, now))
}

func TestTodayClasses(t *testing.T) {
	routines := []model.RoutineEntry{
		routine("Monday", "11:30", "ML", 90),
		routine("Monday", "08:00", "DBMS", 60),
		routine("Tuesday", "08:00", "OS", 60),
	}

	list := TodayClasses(routines, monday(12, 0))

	if assert.Len(t, list, 2) {
		assert.Equal(t, "DBMS", list[0].Subject)
		assert.True(t, list[0].IsCompleted)
		assert.Equal(t, "ML", list[1].Subject)
		assert.True(t, list[1].IsNow)
		assert.Equal(t, "13:00", list[1].EndTime)
	}
}

func TestFreePeriods(t *testing.T) {
	routines := []model.RoutineEntry{
		routine("Monday", "08:00", "A", 60),
		routine("Monday", "09:30", "B", 60), // 30 min gap, below threshold
		routine("Monday", "12:00", "C", 60), // 90 min gap
	}

	gaps := FreePeriods(routines, monday(7, 0))

	if assert.Len(t, gaps, 1) {
		assert.Equal(t, "10:30", gaps[0].Start)
		assert.Equal(t, "12:00", gaps[0].End)
		assert.Equal(t, 90, gaps[0].Duration)
	}

	assert.Nil(t, FreePeriods(routines[:1], monday(7, 0)))
}

func TestUpcomingEvents(t *testing.T) {
	events := []model.EventEntry{
		{ID: 1, Date: "2026-01-25", Time: "10:00", Name: "later"},
		{ID: 2, Date: "2026-01-20", Time: "09:00", Name: "soon"},
		{ID: 3, Date: "2026-01-01", Time: "09:00", Name: "past"},
		{ID: 4, Date: "2026-01-21", Time: "09:00", Name: "done", IsCompleted: true},
	}

	list := UpcomingEvents(events, monday(9, 0), 5)

	if assert.Len(t, list, 2) {
		assert.Equal(t, "soon", list[0].Name)
		assert.Equal(t, 1, list[0].DaysUntil)
		assert.True(t, list[0].IsUrgent)
		assert.Equal(t, "later", list[1].Name)
		assert.False(t, list[1].IsUrgent)
	}

	assert.Len(t, UpcomingEvents(events, monday(9, 0), 1), 1)
}
