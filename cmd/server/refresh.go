package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/puic/quickxs-server/internal/db"
	"github.com/puic/quickxs-server/internal/model"
	"github.com/puic/quickxs-server/internal/notify"
	"github.com/puic/quickxs-server/internal/snapshot"
	"github.com/puic/quickxs-server/internal/widget"
)

// Single-student deployment: the first account owns the notification
// settings the planner runs with.
const settingsUserID = 1

// newRefresh returns the closure that rebuilds everything derived from
// the database: the reminder schedule and the published widget snapshot.
// It runs on the cron tick and after every admin mutation.
func newRefresh(source *snapshot.Source, store db.Store, planner *notify.Planner, publisher *widget.Publisher, clock notify.Clock) func() {
	return func() {
		ctx := context.Background()

		routines := source.Routines(ctx)
		events := source.Events(ctx)

		settings, err := store.GetNotificationSettings(settingsUserID)
		if err != nil {
			log.Warn().Err(err).Msg("falling back to default notification settings")
			settings = model.DefaultNotificationSettings(settingsUserID)
		}

		planner.Replan(routines, events, settings)
		publisher.Publish(ctx, widget.Build(routines, events, clock.Now()))
	}
}
