package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/LaryssaGabi/StudyFlow/internal/bot"
	"github.com/LaryssaGabi/StudyFlow/internal/config"
	"github.com/LaryssaGabi/StudyFlow/internal/handler"
	"github.com/LaryssaGabi/StudyFlow/internal/repository"
	"github.com/LaryssaGabi/StudyFlow/internal/repository/gormrepo"
	"github.com/LaryssaGabi/StudyFlow/internal/service"
	"github.com/LaryssaGabi/StudyFlow/internal/storage/cache"
	"github.com/LaryssaGabi/StudyFlow/internal/storage/db"
	"github.com/joho/godotenv"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func setupStore(cfg config.StoreConfig, logger *zap.Logger) (service.StoreI, io.Closer, error) {
	if cfg.Driver == config.DriverPostgres {
		sqlDB, err := db.InitDB(cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRepository(sqlDB), sqlDB, nil
	}

	gormDB, err := db.InitGorm(cfg, logger, gormrepo.Models()...)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormrepo.NewRepository(gormDB), sqlDB, nil
}

func main() {
	if os.Getenv("APP_ENV") != "production" {
		// a missing .env is fine, the environment may already be set
		_ = godotenv.Load()
	}

	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	store, closer, err := setupStore(cfg.Store, logger)
	if err != nil {
		logger.Fatal("failed init store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	defer closer.Close()

	policy := service.ReviewPolicy{
		MasteryThreshold:  cfg.Review.MasteryThreshold,
		KeepMasteryOnMiss: cfg.Review.KeepMasteryOnMiss,
	}
	newSession := func(notifier service.Notifier) *service.Session {
		return service.NewSession(store, notifier, policy, logger)
	}
	sessions := cache.NewCache()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup

	if cfg.Bot.Enabled {
		telegram, err := bot.NewTelegramAPI(cfg.Bot.Token, cfg.Env, cfg.App.Timeout, newSession, sessions, logger)
		if err != nil {
			logger.Fatal("failed init bot", zap.Error(err))
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			telegram.Start(ctx)
		}()
	}

	if cfg.HTTP.Enabled {
		h := handler.NewHandler(handler.SubjectSessions(sessions, newSession, logger), logger)
		server, err := handler.NewServer(cfg.HTTP.Addr, cfg.HTTP.JWTSecret, cfg.HTTP.AllowedOrigins, cfg.App.Timeout, h, logger)
		if err != nil {
			logger.Fatal("failed init http server", zap.Error(err))
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := server.Run(ctx); err != nil {
				logger.Error("http server failed", zap.Error(err))
				stop()
			}
		}()
	}

	if !cfg.Bot.Enabled && !cfg.HTTP.Enabled {
		logger.Fatal("nothing to run, enable bot or http")
	}

	wg.Wait()
	logger.Info("stopped")
}
