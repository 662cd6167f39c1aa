package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"surveyapp/internal/config"
	"surveyapp/internal/core"
	"surveyapp/internal/db"
	"surveyapp/internal/docstore"
	"surveyapp/internal/http/handler"
	"surveyapp/internal/http/handler/middleware"
	"surveyapp/internal/http/payload"
	"surveyapp/internal/http/server"
	"surveyapp/internal/repository"
	"surveyapp/pkg/log"
	"surveyapp/pkg/password"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("surveyapp", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		logger.Errorw("failed to parse log level", "error", err)
		return err
	}
	logger = log.NewZapLogger("surveyapp", level)
	defer logger.Sync()

	// store
	repo, closeStore, err := openStore(config, logger)
	if err != nil {
		logger.Errorw("failed to open store", "error", err)
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Errorw("failed to close store", "error", err)
		}
	}()

	// credential service
	hasher, err := password.NewService(config.PasswordHashAlgorithm)
	if err != nil {
		logger.Errorw("failed to create password service", "error", err)
		return err
	}

	// survey service
	service := core.NewSurveyService(
		logger,
		repo,
		hasher,
		core.WithFirstAnswerOnly(config.SubmitFirstAnswerOnly))

	// handler
	surveyHlr := handler.NewSurveyHandler(
		logger,
		payload.DecodeValidator{},
		service)

	// register routes
	mux := http.NewServeMux()
	surveyHlr.RegisterRoutes(mux)

	// middleware
	var hdlr http.Handler = mux
	hdlr = middleware.NewRecoverMiddleware(logger).Recover(hdlr)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.CORS(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port, config.ShutdownTimeout)
	return run(srv)
}

// openStore picks the backend from the connection string and prepares its schema.
func openStore(cfg config.App, logger *zap.SugaredLogger) (core.Repository, func() error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreConnectTimeout)
	defer cancel()

	if docstore.IsMongoURI(cfg.ConnectionString) {
		store, err := docstore.Connect(ctx, cfg.ConnectionString, cfg.DBName)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to mongodb: %w", err)
		}

		if err = store.EnsureIndexes(ctx); err != nil {
			_ = store.Close(context.Background())
			return nil, nil, fmt.Errorf("ensure indexes: %w", err)
		}

		logger.Infow("using mongodb store", "database", cfg.DBName)
		return store, func() error { return store.Close(context.Background()) }, nil
	}

	dbConn, err := db.NewGormDB(cfg.ConnectionString)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	if err = dbConn.Ping(ctx); err != nil {
		_ = dbConn.Close()
		return nil, nil, err
	}

	repo := repository.NewSurveyRepository(dbConn)
	if err = repo.Migrate(); err != nil {
		_ = dbConn.Close()
		return nil, nil, err
	}

	logger.Infow("using sql store")
	return repo, dbConn.Close, nil
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return sdErr
	}

	return err
}
