// Package widget builds the JSON snapshot the home-screen widgets render:
// current class, next class, today's list, daily progress and the first
// few upcoming events.
package widget

import (
	"context"
	"encoding/json"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/puic/quickxs-server/internal/model"
	"github.com/puic/quickxs-server/internal/projector"
	"github.com/puic/quickxs-server/internal/redis"
)

// The widgets show at most this many upcoming events.
const maxUpcomingEvents = 5

// Build assembles widget data from one projection pass.
func Build(routines []model.RoutineEntry, events []model.EventEntry, now time.Time) model.WidgetData {
	p := projector.Project(routines, events, now)

	return model.WidgetData{
		CurrentClass:   p.CurrentClass,
		NextClass:      p.NextClass,
		TodayClasses:   projector.TodayClasses(routines, now),
		TodayProgress:  p.Progress,
		NextEvent:      p.NextEvent,
		UpcomingEvents: projector.UpcomingEvents(events, now, maxUpcomingEvents),
		GeneratedAt:    now.Format(time.RFC3339),
	}
}

// Publisher pushes widget data to redis (for the HTTP endpoint) and onto
// an MQTT topic so widget clients refresh without polling.
type Publisher struct {
	client mqtt.Client
	topic  string
}

func NewPublisher(client mqtt.Client, topic string) *Publisher {
	return &Publisher{client: client, topic: topic}
}

func (p *Publisher) Publish(ctx context.Context, data model.WidgetData) {
	redis.SetJSON(ctx, redis.KeyWidgetData, data, 0)

	if p.client == nil {
		return
	}
	payload, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode widget data")
		return
	}
	if token := p.client.Publish(p.topic, 1, true, payload); token.Wait() && token.Error() != nil {
		log.Error().Err(token.Error()).Str("topic", p.topic).Msg("failed to publish widget data")
	}
}
