package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/puic/quickxs-server/internal/model"
)

type recordingSink struct {
	mu    sync.Mutex
	shown []Notification
}

func (s *recordingSink) Show(n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shown = append(s.shown, n)
}

func fixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

func settings(timings ...int64) model.NotificationSettings {
	return model.NotificationSettings{
		Enabled: true,
		Timings: pq.Int64Array(timings),
		Sound:   true,
		Vibrate: true,
	}
}

// Monday 10:00 local.
var planNow = time.Date(2026, 1, 19, 10, 0, 0, 0, time.Local)

func TestReplanSchedulesOnlyLeadsInsideWindow(t *testing.T) {
	p := NewPlanner(&recordingSink{}, fixedClock(planNow))
	defer p.CancelAll()

	// Class at now+15min: lead 10 fits, lead 2 fits, lead 20 is already past.
	routines := []model.RoutineEntry{
		{ID: 1, Day: "Monday", Time: "10:15", Subject: "ML", Duration: 60},
	}

	p.Replan(routines, nil, settings(20, 10, 2))
	assert.Equal(t, 2, p.Pending())
}

func TestReplanSingleTimerForShortLead(t *testing.T) {
	p := NewPlanner(&recordingSink{}, fixedClock(planNow))
	defer p.CancelAll()

	// Class at 10:12: lead 10 already passed at 10:02, lead 2 fires at 10:10.
	routines := []model.RoutineEntry{
		{ID: 1, Day: "Monday", Time: "10:12", Subject: "ML", Duration: 60},
	}

	p.Replan(routines, nil, settings(10, 2))
	assert.Equal(t, 1, p.Pending())

	// Replanning with identical inputs keeps exactly one live timer.
	p.Replan(routines, nil, settings(10, 2))
	assert.Equal(t, 1, p.Pending())
}

func TestReplanIsFullReplace(t *testing.T) {
	p := NewPlanner(&recordingSink{}, fixedClock(planNow))
	defer p.CancelAll()

	routines := []model.RoutineEntry{
		{ID: 1, Day: "Monday", Time: "11:00", Subject: "ML", Duration: 60},
		{ID: 2, Day: "Monday", Time: "14:00", Subject: "OS", Duration: 60},
	}
	p.Replan(routines, nil, settings(10))
	assert.Equal(t, 2, p.Pending())

	// Second plan with fewer entries leaves no stale timers behind.
	p.Replan(routines[:1], nil, settings(10))
	assert.Equal(t, 1, p.Pending())
}

func TestReplanSkipsOtherDaysAndBeyondHorizon(t *testing.T) {
	p := NewPlanner(&recordingSink{}, fixedClock(planNow))
	defer p.CancelAll()

	routines := []model.RoutineEntry{
		{ID: 1, Day: "Tuesday", Time: "10:30", Subject: "wrong day", Duration: 60},
		{ID: 2, Day: "Monday", Time: "23:30", Subject: "too far", Duration: 60},
	}

	// 23:30 minus 90 min lead is 22:00, exactly 12h from 10:00 requires the
	// entry to be inside the window; 22:00-10:00 = 12h, excluded.
	p.Replan(routines, nil, settings(90))
	assert.Equal(t, 0, p.Pending())
}

func TestDisabledSettingsClearSchedule(t *testing.T) {
	p := NewPlanner(&recordingSink{}, fixedClock(planNow))
	defer p.CancelAll()

	routines := []model.RoutineEntry{
		{ID: 1, Day: "Monday", Time: "11:00", Subject: "ML", Duration: 60},
	}
	p.Replan(routines, nil, settings(10))
	assert.Equal(t, 1, p.Pending())

	off := settings(10)
	off.Enabled = false
	p.Replan(routines, nil, off)
	assert.Equal(t, 0, p.Pending())
}

func TestMalformedEntriesExcludedNotFatal(t *testing.T) {
	p := NewPlanner(&recordingSink{}, fixedClock(planNow))
	defer p.CancelAll()

	routines := []model.RoutineEntry{
		{ID: 1, Day: "Monday", Time: "9:xx", Subject: "broken", Duration: 60},
		{ID: 2, Day: "Monday", Time: "11:00", Subject: "ok", Duration: 60},
	}
	events := []model.EventEntry{
		{ID: 7, Date: "not-a-date", Time: "10:00", Name: "broken"},
	}

	p.Replan(routines, events, settings(10))
	assert.Equal(t, 1, p.Pending())
}

func TestEventTiersWithinLookahead(t *testing.T) {
	p := NewPlanner(&recordingSink{}, fixedClock(planNow))
	defer p.CancelAll()

	// Event tomorrow 13:00: tiers 1d (today 13:00), 3h (tomorrow 10:00),
	// 30m (tomorrow 12:30) all land inside 7 days, plus morning-of 07:00.
	events := []model.EventEntry{
		{ID: 3, Date: "2026-01-20", Time: "13:00", Name: "CT", EventType: "CT"},
	}

	p.Replan(nil, events, settings())
	assert.Equal(t, 4, p.Pending())
}

func TestCompletedAndFarEventsNotScheduled(t *testing.T) {
	p := NewPlanner(&recordingSink{}, fixedClock(planNow))
	defer p.CancelAll()

	events := []model.EventEntry{
		{ID: 1, Date: "2026-01-20", Time: "13:00", Name: "done", EventType: "CT", IsCompleted: true},
		{ID: 2, Date: "2026-03-01", Time: "13:00", Name: "far", EventType: "CT"},
	}

	p.Replan(nil, events, settings())
	assert.Equal(t, 0, p.Pending())
}

func TestFiringDeliversPayloadAndFreesSlot(t *testing.T) {
	sink := &recordingSink{}
	// One second before the lead-2 reminder of a 10:02 class fires.
	p := NewPlanner(sink, fixedClock(planNow.Add(-time.Second)))
	defer p.CancelAll()

	room := "301"
	routines := []model.RoutineEntry{
		{ID: 1, Day: "Monday", Time: "10:02", Subject: "ML", Classroom: &room, Duration: 60},
	}

	p.Replan(routines, nil, settings(2))
	assert.Equal(t, 1, p.Pending())

	assert.Eventually(t, func() bool {
		sink.mu.Lock()
		defer sink.mu.Unlock()
		return len(sink.shown) == 1
	}, 3*time.Second, 10*time.Millisecond)

	sink.mu.Lock()
	n := sink.shown[0]
	sink.mu.Unlock()
	assert.Equal(t, "Class Starting Soon!", n.Title)
	assert.Contains(t, n.Body, "ML starts in 2 minutes at 10:02 AM")
	assert.Contains(t, n.Body, "Room 301")
	assert.True(t, n.Urgent)
	assert.Equal(t, "class-1", n.Tag)
	assert.Zero(t, n.DismissAfter)
	assert.Equal(t, 0, p.Pending())
}

func TestClassUrgencyThreshold(t *testing.T) {
	n := classNotification(model.RoutineEntry{ID: 1, Subject: "ML", Time: "10:15"}, 10, settings(10))
	assert.False(t, n.Urgent)
	assert.Equal(t, "Upcoming Class", n.Title)
	assert.NotZero(t, n.DismissAfter)

	n = classNotification(model.RoutineEntry{ID: 1, Subject: "ML", Time: "10:15"}, 5, settings(5))
	assert.True(t, n.Urgent)
}

func TestUrgentEventPriorityPropagates(t *testing.T) {
	urgent := "urgent"
	e := model.EventEntry{ID: 9, Date: "2026-01-20", Time: "13:00", Name: "Final", EventType: "Exam", Priority: &urgent}

	n := eventNotification(e, "1d", e.Urgent(), settings())
	assert.True(t, n.Urgent)
	assert.Zero(t, n.DismissAfter)

	plain := model.EventEntry{ID: 10, Date: "2026-01-20", Time: "13:00", Name: "Quiz", EventType: "CT"}
	n = eventNotification(plain, "1d", plain.Urgent(), settings())
	assert.False(t, n.Urgent)
}
