package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"barprep_backend/internals/configs"
	database "barprep_backend/internals/databases"
	paymentService "barprep_backend/internals/features/shop/payments/service"
	"barprep_backend/internals/mailer"
	middlewares "barprep_backend/internals/middlewares"
	"barprep_backend/internals/middlewares/logger"
	routes "barprep_backend/internals/route"
	seeds "barprep_backend/internals/seeds"
	"barprep_backend/internals/sessions"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// Request-ID + timing.
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s",
			id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	app.Use(middlewares.RecoveryMiddleware())
	app.Use(middlewares.CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(middlewares.GlobalRateLimiter())

	database.ConnectDB()
	database.TunePool()
	database.Migrate()
	database.WarmUpQueries()

	if configs.GetEnv("RUN_SEEDS") == "1" {
		seeds.RunAllSeeds(database.DB)
	}

	paymentService.InitStripe(configs.StripeSecretKey)

	store := newSessionStore()
	mail := mailer.NewFromEnv()

	routes.BaseRoutes(app)
	routes.SetupRoutes(app, database.DB, store, mail)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("[INFO] listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if err := store.Close(); err != nil {
		log.Printf("[WARN] session store close: %v", err)
	}
	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// newSessionStore prefers Redis; without SESSION_REDIS_ADDR it falls back to
// the in-process store, which is fine for a single instance but loses
// sessions on restart.
func newSessionStore() sessions.Store {
	addr := configs.GetEnv("SESSION_REDIS_ADDR")
	if addr == "" {
		log.Printf("[WARN] SESSION_REDIS_ADDR not set, using in-memory session store")
		return sessions.NewMemoryStore()
	}

	db, _ := strconv.Atoi(configs.GetEnv("SESSION_REDIS_DB", "0"))
	store := sessions.NewRedisStore(addr, configs.GetEnv("SESSION_REDIS_PASSWORD"), db)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		log.Fatalf("redis session store unreachable at %s: %v", addr, err)
	}
	return store
}
