package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"localitybay/internal/apiclient"
	"localitybay/internal/config"
	"localitybay/internal/db"
	"localitybay/internal/service"
	"localitybay/internal/session"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	store, cleanup, err := newTokenStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("token store init failed", zap.Error(err))
	}
	defer cleanup()

	nav := &menuNavigator{}
	sess := session.New(store, session.WithNavigator(nav), session.WithLogger(logger))
	if err := sess.Load(ctx); err != nil {
		logger.Warn("load stored token failed", zap.Error(err))
	}
	unsubscribe := sess.Subscribe(func(ev session.Event) {
		if ev == session.EventExpired {
			fmt.Println("\n! Your session has expired. Please log in again.")
		}
	})
	defer unsubscribe()

	client := apiclient.New(cfg.APIBaseURL, apiclient.Options{
		Session:   sess,
		Logger:    logger,
		Timeout:   cfg.RequestTimeout,
		RateLimit: cfg.RequestRateLimit,
		RateBurst: cfg.RequestRateBurst,
	})

	app := &cliApp{
		reader:    reader,
		session:   sess,
		navigator: nav,
		auth:      service.NewAuthService(logger, client, sess),
		meetups:   service.NewMeetupService(client),
		users:     service.NewUserService(client),
		ads:       service.NewAdvertisementService(client),
		templates: service.NewTemplateService(client),
	}

	logger.Info("client ready",
		zap.String("base_url", cfg.APIBaseURL),
		zap.String("token_store", cfg.TokenStore),
		zap.String("state", sess.State().String()),
	)
	app.run(ctx)
}

func newLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	zcfg.Level = lvl
	// stdout queda libre para el menú.
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}

// newTokenStore elige el almacenamiento del token según TOKEN_STORE.
func newTokenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (session.TokenStore, func(), error) {
	noop := func() {}
	switch strings.ToLower(strings.TrimSpace(cfg.TokenStore)) {
	case "memory":
		return session.NewMemoryStore(), noop, nil
	case "", "file":
		return session.NewFileStore(cfg.TokenFile, cfg.TokenPassphrase), noop, nil
	case "redis":
		if cfg.RedisAddr == "" {
			return nil, noop, fmt.Errorf("REDIS_ADDR is required for the redis token store")
		}
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			redisClient.Close()
			return nil, noop, fmt.Errorf("redis ping: %w", err)
		}
		return session.NewRedisStore(redisClient, session.DefaultKey, 0), func() { redisClient.Close() }, nil
	case "postgres":
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			return nil, noop, err
		}
		if err := db.Ping(ctx, pool); err != nil {
			pool.Close()
			return nil, noop, fmt.Errorf("postgres ping: %w", err)
		}
		store := session.NewPostgresStore(pool, session.DefaultKey)
		if err := store.EnsureSchema(ctx); err != nil {
			logger.Warn("ensure token schema failed", zap.Error(err))
		}
		return store, pool.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown TOKEN_STORE %q", cfg.TokenStore)
	}
}
