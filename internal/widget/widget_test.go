package widget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/puic/quickxs-server/internal/model"
)

func TestBuild(t *testing.T) {
	// Monday 12:00 local.
	now := time.Date(2026, 1, 19, 12, 0, 0, 0, time.Local)

	routines := []model.RoutineEntry{
		{ID: 1, Day: "Monday", Time: "08:00", Subject: "DBMS", Duration: 60},
		{ID: 2, Day: "Monday", Time: "11:30", Subject: "ML", Duration: 90},
		{ID: 3, Day: "Monday", Time: "14:00", Subject: "OS", Duration: 60},
	}
	events := []model.EventEntry{
		{ID: 1, Date: "2026-01-20", Time: "13:00", Name: "CT", EventType: "CT"},
		{ID: 2, Date: "2026-01-15", Time: "09:00", Name: "done", IsCompleted: true},
	}

	data := Build(routines, events, now)

	if assert.NotNil(t, data.CurrentClass) {
		assert.Equal(t, "ML", data.CurrentClass.Subject)
	}
	if assert.NotNil(t, data.NextClass) {
		assert.Equal(t, "OS", data.NextClass.Subject)
		assert.Equal(t, model.StatusUpcoming, data.NextClass.Status)
	}
	assert.Len(t, data.TodayClasses, 3)
	assert.Equal(t, model.DailyProgress{Completed: 1, Total: 3, Percentage: 33}, data.TodayProgress)
	if assert.NotNil(t, data.NextEvent) {
		assert.Equal(t, "CT", data.NextEvent.Name)
	}
	if assert.Len(t, data.UpcomingEvents, 1) {
		assert.Equal(t, 1, data.UpcomingEvents[0].DaysUntil)
		assert.True(t, data.UpcomingEvents[0].IsUrgent)
	}
	assert.Equal(t, now.Format(time.RFC3339), data.GeneratedAt)
}

func TestBuildEmptySnapshot(t *testing.T) {
	now := time.Date(2026, 1, 19, 12, 0, 0, 0, time.Local)

	data := Build(nil, nil, now)

	assert.Nil(t, data.CurrentClass)
	assert.Nil(t, data.NextClass)
	assert.Nil(t, data.NextEvent)
	assert.Empty(t, data.TodayClasses)
	assert.Empty(t, data.UpcomingEvents)
	assert.Equal(t, model.DailyProgress{}, data.TodayProgress)
}
