// Package snapshot hands out routine/event lists for projection. Reads go
// to the database; on failure the last good copy cached in redis is served
// so the dashboard and widgets keep working against stale data.
package snapshot

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/puic/quickxs-server/internal/db"
	"github.com/puic/quickxs-server/internal/model"
	"github.com/puic/quickxs-server/internal/redis"
)

// Cached snapshots outlive short outages but not a whole semester.
const snapshotTTL = 7 * 24 * time.Hour

type Source struct {
	store db.Store
}

func NewSource(store db.Store) *Source {
	return &Source{store: store}
}

// Routines returns the weekly routine table, falling back to the cached
// snapshot when the store is unreachable. An empty list with no cache is
// not an error; projections handle empty snapshots.
func (s *Source) Routines(ctx context.Context) []model.RoutineEntry {
	routines, err := s.store.ListRoutines()
	if err != nil {
		var cached []model.RoutineEntry
		if redis.GetJSON(ctx, redis.KeyRoutines, &cached) {
			log.Warn().Err(err).Int("cached", len(cached)).Msg("serving cached routines")
			return cached
		}
		log.Warn().Err(err).Msg("routines unavailable and no cache, serving empty snapshot")
		return nil
	}
	redis.SetJSON(ctx, redis.KeyRoutines, routines, snapshotTTL)
	return routines
}

// Events mirrors Routines for the event table.
func (s *Source) Events(ctx context.Context) []model.EventEntry {
	events, err := s.store.ListEvents()
	if err != nil {
		var cached []model.EventEntry
		if redis.GetJSON(ctx, redis.KeyEvents, &cached) {
			log.Warn().Err(err).Int("cached", len(cached)).Msg("serving cached events")
			return cached
		}
		log.Warn().Err(err).Msg("events unavailable and no cache, serving empty snapshot")
		return nil
	}
	redis.SetJSON(ctx, redis.KeyEvents, events, snapshotTTL)
	return events
}
