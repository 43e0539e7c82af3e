package main

import (
	"log"
	"net/http"

	"github.com/dfigueroa/remote-week/internal/config"
	"github.com/dfigueroa/remote-week/internal/database"
	"github.com/dfigueroa/remote-week/internal/domain/contract"
	"github.com/dfigueroa/remote-week/internal/domain/service"
	"github.com/dfigueroa/remote-week/internal/handlers"
	"github.com/dfigueroa/remote-week/internal/notify"
	"github.com/dfigueroa/remote-week/migrator/sqlite"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
	logger.Info("Migrations completed successfully")

	var notifier contract.Notifier = notify.NewNoop()
	if cfg.SlackEnabled() {
		notifier = notify.NewSlack(cfg.SlackBotToken, cfg.SlackChannelID, logger)
		logger.Info("Slack announcements enabled", zap.String("channel", cfg.SlackChannelID))
	}

	dm := database.NewInstance(db)
	services := service.New(dm, notifier, logger)

	handler := handlers.New(services.User, services.Assignment, logger)

	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, handler.Routes()); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
