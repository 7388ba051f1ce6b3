package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"packcatalog/internal/cache"
	"packcatalog/internal/config"
	"packcatalog/internal/http/handlers"
	applog "packcatalog/internal/log"
	"packcatalog/internal/repos"
	"packcatalog/internal/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := applog.Get()
		l.Fatal().Err(err).Msg("load config")
	}

	// Optional file logging
	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			l := applog.Get()
			l.Warn().Err(err).Str("file", cfg.LogFile).Msg("could not open log file")
		} else {
			defer f.Close()
			out = io.MultiWriter(os.Stdout, f)
		}
	}
	log := applog.Init(cfg.LogLevel, cfg.LogPretty, out)

	db, err := repos.OpenDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("open database")
	}
	defer db.Close()
	store := repos.NewStore(db)

	var listCache cache.Cache
	if cfg.Redis.Addr != "" {
		rc, err := cache.Connect(ctx, cache.RedisConfig{
			Addr:    cfg.Redis.Addr,
			DB:      cfg.Redis.DB,
			TTL:     cfg.Redis.CacheTTL,
			Timeout: 3 * time.Second,
		})
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, product cache disabled")
		} else {
			defer rc.Close()
			listCache = rc
			log.Info().Str("addr", cfg.Redis.Addr).Msg("product cache enabled")
		}
	}

	if err := services.Bootstrap(ctx, store, listCache, cfg.Auth.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("bootstrap")
	}

	go purgeSessions(ctx, store.Users, time.Hour)

	app := handlers.NewApp(handlers.NewDeps(store, cfg, listCache), cfg)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("driver", cfg.DBDriver).Msg("listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("listen")
	}
}

// purgeSessions deletes expired sessions every interval until ctx is done.
func purgeSessions(ctx context.Context, users *repos.UserRepo, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		n, err := users.PurgeExpiredSessions(ctx)
		l := applog.Get()
		if err != nil && ctx.Err() == nil {
			l.Warn().Err(err).Msg("purge expired sessions")
		} else if n > 0 {
			l.Info().Int64("count", n).Msg("purged expired sessions")
		}
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}
