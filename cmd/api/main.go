package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/5-in-a-row/backend/internal/config"
	"github.com/iamasit07/5-in-a-row/backend/internal/repository/redis"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/cleanup"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/decision"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/match"
	transportHttp "github.com/iamasit07/5-in-a-row/backend/internal/transport/http"
	"github.com/iamasit07/5-in-a-row/backend/internal/transport/websocket"
)

func main() {
	envErr := godotenv.Load()
	if envErr != nil {
		envErr = godotenv.Load("../.env")
	}

	cfg := config.LoadConfig()
	config.SetupLogger(cfg)
	if envErr != nil {
		log.Info().Msg("no .env file found, using environment")
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 1. Redis decision cache (optional)
	if err := redis.InitRedis(cfg); err != nil {
		log.Warn().Err(err).Msg("failed to initialize redis")
	}
	defer redis.CloseRedis()

	var cache decision.Cache
	if redis.IsRedisEnabled() && redis.RedisClient != nil {
		cache = redis.NewRedisCache(redis.RedisClient)
	}

	// 2. Services
	decisions := decision.NewService(cache, cfg.DecisionCacheTTL, cfg.SearchTimeout)
	matches := match.NewManager(decisions)
	connManager := websocket.NewConnectionManager()
	matches.SetNotifier(connManager)

	// 3. Background workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	cleanup.NewWorker(matches, cfg.CleanupInterval, cfg.MatchIdleTimeout).Start(workerCtx)

	// 4. Handlers & router
	engineHandler := transportHttp.NewEngineHandler(decisions)
	matchHandler := transportHttp.NewMatchHandler(matches)
	wsHandler := websocket.NewHandler(connManager, matches)
	router := transportHttp.NewRouter(engineHandler, matchHandler, wsHandler.HandleWebSocket)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("server is shutting down")
	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited gracefully")
}
