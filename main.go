package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"

	"capacitajun_backend/internals/configs"
	database "capacitajun_backend/internals/databases"
	"capacitajun_backend/internals/features/learning/quizzes/session"
	generatorService "capacitajun_backend/internals/features/tools/generators/service"
	scheduler "capacitajun_backend/internals/features/users/auth/scheduler"
	"capacitajun_backend/internals/helpers/cache"
	"capacitajun_backend/internals/helpers/logger"
	"capacitajun_backend/internals/helpers/metrics"
	"capacitajun_backend/internals/helpers/pubsub"
	"capacitajun_backend/internals/helpers/search"
	"capacitajun_backend/internals/helpers/storage"
	middlewares "capacitajun_backend/internals/middlewares"
	routes "capacitajun_backend/internals/route"
	"capacitajun_backend/internals/seeds"
)

func main() {
	cfg := configs.LoadEnv()
	log := logger.Init("capacitajun", cfg.LogLevel)

	m := metrics.New("capacitajun")
	metrics.Default = m

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            middlewares.ErrorHandler,
		DisableStartupMessage:   true,
		BodyLimit:               10 << 20,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	middlewares.SetupMiddlewares(app, cfg, m)

	// 🔌 DB connect + pool + warm-up
	db := database.ConnectDB(cfg.DB)
	database.TunePool(db)
	database.WarmUpQueries(db)
	if cfg.SeedOnStart {
		if err := seeds.RunAllSeeds(db); err != nil {
			log.WithError(err).Error("seeding failed")
		}
	}

	// ⚡ Redis (optional): attempt cache + realtime broker
	rdb, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.WithError(err).Warn("redis unavailable, falling back to in-memory cache and broker")
		rdb = nil
	}
	attemptCache := cache.New(rdb)
	attempts := session.NewStore(attemptCache)
	broker := pubsub.New(rdb)

	ctx, cancelInit := context.WithTimeout(context.Background(), 10*time.Second)
	st, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		log.WithError(err).Warn("object storage not configured, background uploads will answer 503")
		st = nil
	}
	if idx, err := search.New(ctx, cfg.Search); err != nil {
		log.WithError(err).Info("lesson search disabled")
	} else {
		search.Lessons = idx
	}
	cancelInit()

	// ⏱ scheduler setelah DB siap
	jobs := cron.New()
	if _, err := scheduler.RegisterBlacklistCleanup(jobs, db, cfg.CleanupCron, cfg.TokenBlacklistTTLDays); err != nil {
		log.WithError(err).Error("cannot schedule blacklist cleanup")
	}
	if _, err := jobs.AddFunc("@every 10m", func() {
		if n := attempts.Sweep(); n > 0 {
			log.WithField("expired", n).Debug("quiz attempts swept")
		}
	}); err != nil {
		log.WithError(err).Error("cannot schedule attempt sweep")
	}
	if _, err := jobs.AddFunc("@every 30s", func() {
		m.RecordDBPoolStats(database.PoolStats(db))
	}); err != nil {
		log.WithError(err).Error("cannot schedule pool stats")
	}
	jobs.Start()

	// ✅ Routes
	routes.SetupRoutes(app, db, routes.Deps{
		Attempts: attempts,
		Broker:   broker,
		Storage:  st,
		AI:       generatorService.NewChatGateway(cfg.AI),
		Metrics:  m,
	})

	// 🔒 Keep-Alive & timeout koneksi server (SSE streams need no write timeout)
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := cfg.Port
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Infof("listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.WithError(err).Fatal("server error")
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	stopped := jobs.Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(shutdownCtx)
	<-stopped.Done()

	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
