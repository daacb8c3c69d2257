package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/masjid-suite/hub/internal/db"
	"github.com/masjid-suite/hub/internal/http/middleware"
	"github.com/masjid-suite/hub/internal/realtime"
	"github.com/masjid-suite/hub/internal/redis"
)

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	env := LoadEnvironment()

	if env.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		gin.SetMode(gin.ReleaseMode)
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init failed")
	}
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}

	store := db.NewStore(nil)
	middleware.SetStore(store)

	redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)

	if env.MQTTBrokerURL != "" {
		if err := realtime.InitMQTT(env.MQTTBrokerURL, env.MQTTClientID); err != nil {
			// Commands degrade to errors at dispatch time; the rest of
			// the API keeps working.
			log.Warn().Err(err).Msg("MQTT connect failed, remote commands unavailable")
		}
		defer realtime.CleanupMQTT()
	}

	storageSystem := InitStorage(env)

	r := gin.Default()
	RegisterRoutes(r, env, store, storageSystem)

	log.Info().Str("address", env.ServerAddress).Msg("server listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
