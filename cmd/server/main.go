package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/puic/quickxs-server/internal/db"
	"github.com/puic/quickxs-server/internal/notify"
	"github.com/puic/quickxs-server/internal/push"
	"github.com/puic/quickxs-server/internal/redis"
	"github.com/puic/quickxs-server/internal/snapshot"
	"github.com/puic/quickxs-server/internal/widget"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	env := LoadEnvironment()

	if env.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)

	store := db.NewStore(nil)
	source := snapshot.NewSource(store)
	clock := notify.SystemClock

	// The broker is optional: without it reminders and widget snapshots
	// are still planned and cached, just not pushed.
	var sink notify.Sink = notify.SinkFunc(func(n notify.Notification) {
		log.Info().Str("tag", n.Tag).Str("title", n.Title).Msg("reminder fired")
	})
	var publisher *widget.Publisher
	if env.MQTTBrokerURL != "" {
		client, err := push.Connect(env.MQTTBrokerURL, "quickxs-server")
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to MQTT broker")
		}
		defer push.Disconnect(client)
		sink = notify.NewMQTTSink(client, env.NotifyTopic)
		publisher = widget.NewPublisher(client, env.WidgetTopic)
	} else {
		log.Warn().Msg("MQTT_BROKER_URL not set, push delivery disabled")
		publisher = widget.NewPublisher(nil, env.WidgetTopic)
	}

	planner := notify.NewPlanner(sink, clock)
	refresh := newRefresh(source, store, planner, publisher, clock)

	// Plan once at boot, then replan every minute so firings stay aligned
	// with edits made outside the API and with the class lookahead window.
	refresh()
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every 1m", refresh); err != nil {
		log.Fatal().Err(err).Msg("failed to schedule refresh job")
	}
	scheduler.Start()
	defer scheduler.Stop()

	if env.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	RegisterRoutes(r, env, store, source, clock, refresh)

	log.Info().Str("address", env.ServerAddress).Msg("server listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
