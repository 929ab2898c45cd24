// Command api runs the repair desk support HTTP API.
//
//	@title						Repair Desk Support API
//	@version					1.0
//	@description				Customer support ticketing for a device repair shop.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the access token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/repairdesk/support-api/internal/api"
	"github.com/repairdesk/support-api/internal/api/handler"
	"github.com/repairdesk/support-api/internal/core/service"
	"github.com/repairdesk/support-api/internal/infrastructure/config"
	mongorepo "github.com/repairdesk/support-api/internal/infrastructure/db/mongo"
	rediscache "github.com/repairdesk/support-api/internal/infrastructure/db/redis"
	"github.com/repairdesk/support-api/internal/infrastructure/queue"
	"github.com/repairdesk/support-api/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

func main() {
	loaded := config.LoadDotEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad(ctx)

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "repair-desk-api",
	})
	log.Info().Strs("env_files", loaded).Str("env", cfg.Env).Msg("configuration loaded")

	// --- Storage ---
	mongoClient, db, err := mongorepo.Connect(ctx, mongorepo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  "repair-desk-api",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo unavailable")
	}

	rdb, err := rediscache.Connect(ctx, rediscache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis unavailable")
	}

	users := mongorepo.NewUserRepository(db)
	requests := mongorepo.NewSupportRequestRepository(db)
	knowledge := mongorepo.NewKnowledgeBaseRepository(db)
	parts := mongorepo.NewSparePartRepository(db)
	jobs := mongorepo.NewJobRepository(db)
	techs := mongorepo.NewTechnicianRepository(db)
	audits := mongorepo.NewAuditRepository(db)

	if err := mongorepo.EnsureIndexes(ctx, users, requests, knowledge, parts, jobs, techs, audits); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	// --- Audit trail ---
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, audits, logger.Component("audit"))
	dispatcher.Start(workerCtx)

	// --- Services ---
	sessions := service.NewSessionService(users, rediscache.NewSessionCache(rdb, cfg.Auth.SessionTTL), logger.Component("session"))
	tokens := service.NewTokenIssuer(service.TokenConfig{
		AccessSecret:  cfg.Auth.AccessTokenSecret,
		RefreshSecret: cfg.Auth.RefreshTokenSecret,
		LoginTTL:      cfg.Auth.LoginTokenTTL,
		AccessTTL:     cfg.Auth.AccessTokenTTL,
		RefreshTTL:    cfg.Auth.RefreshTokenTTL,
	})
	authService := service.NewAuthService(users, sessions, tokens, dispatcher, logger.Component("auth"))

	if cfg.Admin.Email != "" {
		if err := authService.EnsureAdmin(ctx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			log.Fatal().Err(err).Msg("seed admin")
		}
	}

	e := api.NewRouter(api.Deps{
		Log:          logger.Component("http"),
		AccessSecret: cfg.Auth.AccessTokenSecret,
		CORSOrigins:  cfg.CORSOrigins,
		Auth:         authService,
		Sessions:     sessions,
		Users:        service.NewUserService(users, sessions, dispatcher, logger.Component("users")),
		Requests:     service.NewSupportRequestService(requests, audits, dispatcher, logger.Component("requests")),
		Knowledge:    service.NewKnowledgeBaseService(knowledge, dispatcher),
		Parts:        service.NewSparePartService(parts, dispatcher),
		Jobs:         service.NewJobService(jobs, dispatcher, logger.Component("jobs")),
		Technicians:  service.NewTechnicianService(techs, dispatcher),
		Checks: map[string]handler.Check{
			"mongodb": handler.MongoCheck(db),
			"redis":   handler.RedisCheck(rdb),
		},
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	// Drain queued audit events before the database goes away.
	cancelWorkers()
	dispatcher.Wait()

	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect")
	}
	log.Info().Msg("bye")
}
