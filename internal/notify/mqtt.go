package notify

import (
	"encoding/json"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

// MQTTSink publishes fired notifications to an MQTT topic so the Android
// shell and the PWA service worker can render them.
type MQTTSink struct {
	client mqtt.Client
	topic  string
}

func NewMQTTSink(client mqtt.Client, topic string) *MQTTSink {
	return &MQTTSink{client: client, topic: topic}
}

func (s *MQTTSink) Show(n Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		log.Error().Err(err).Str("tag", n.Tag).Msg("failed to encode notification")
		return
	}
	if token := s.client.Publish(s.topic, 1, false, payload); token.Wait() && token.Error() != nil {
		log.Error().Err(token.Error()).Str("topic", s.topic).Msg("failed to publish notification")
		return
	}
	log.Info().Str("tag", n.Tag).Bool("urgent", n.Urgent).Msg("notification published")
}
