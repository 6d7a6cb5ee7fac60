package main

import (
	"log"

	"movie-reservation/cmd"
	"movie-reservation/internal/data/cache"
	"movie-reservation/internal/data/repository"
	"movie-reservation/internal/queue"
	"movie-reservation/internal/wire"
	"movie-reservation/pkg/database"
	"movie-reservation/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Redis and RabbitMQ are optional; the service degrades to direct
	// database reads and no event publishing when they are absent.
	redisClient, err := database.InitRedis(config.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, running without cache", zap.Error(err))
	}
	seatCache := cache.New(redisClient, logger)

	publisher, err := queue.NewPublisher(config.Queue.URL, logger)
	if err != nil {
		logger.Warn("Queue unavailable, running without events", zap.Error(err))
	}
	defer publisher.Close()

	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(repos, seatCache, publisher, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
