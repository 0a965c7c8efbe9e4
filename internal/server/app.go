// Package server initializes and runs the MoodFlow backend. It opens the
// database, runs migrations, wires the services and the HTTP endpoint, and
// handles graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"moodflow/internal/logging"
	"moodflow/internal/server/config"
	"moodflow/internal/server/httpapi"
	"moodflow/internal/server/insight"
	"moodflow/internal/server/payments"
	"moodflow/internal/server/repositories/repomanager"
	"moodflow/internal/server/sentiment"
	"moodflow/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	manager := repomanager.NewPostgresRepositoryManager()
	if err := manager.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	analyzer := sentiment.NewHuggingFaceClient(c.SentimentAPIURL, c.SentimentAPIKey)
	generator := insight.NewOpenAIClient(c.InsightAPIURL, c.InsightAPIKey, c.InsightModel)
	provider := payments.NewLinkClient(c.PaymentAPIURL, c.PaymentSecretKey, c.PaymentPublishableKey)

	userService := services.NewUserService(manager.Users(db), c)
	journalService := services.NewJournalService(manager.Entries(db), analyzer, generator, provider, c, logger)

	server := httpapi.NewServer(c, logger, userService, journalService)

	return &App{config: c, logger: logger, db: db, server: server}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
