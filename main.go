package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/configs"
	database "github.com/Tafsirchy/VitalFlow-BackendNew/internals/databases"
	fundingService "github.com/Tafsirchy/VitalFlow-BackendNew/internals/features/funding/service"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/logger"
	middlewares "github.com/Tafsirchy/VitalFlow-BackendNew/internals/middlewares"
	routes "github.com/Tafsirchy/VitalFlow-BackendNew/internals/route"
)

func main() {
	if err := logger.Initialize("info"); err != nil {
		log.Fatalf("logger init failed: %v", err)
	}

	configs.LoadEnv()

	// LOG_LEVEL may come from the .env file just loaded
	if err := logger.Initialize(configs.GetEnv("LOG_LEVEL", "info")); err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Log.Sync()

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

	// request-ID + timing, with an HTTP timeout guard aligned to the DB
	// statement_timeout
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		logger.Log.Debug("request done",
			zap.String("reqid", id),
			zap.String("method", c.Method()),
			zap.String("path", c.OriginalURL()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("dur", time.Since(start)),
		)
		return err
	})

	middlewares.SetupMiddlewares(app)

	database.ConnectDB()
	database.Migrate()
	database.TunePool()
	database.WarmUpQueries()

	var gateway fundingService.Gateway
	if configs.PaymentGateway == "midtrans" {
		gateway = fundingService.NewMidtransGateway(configs.MidtransServerKey)
	} else {
		fundingService.InitStripe(configs.StripeSecretKey)
		gateway = fundingService.NewStripeGateway()
	}

	routes.SetupRoutes(app, database.DB, gateway)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		logger.Log.Info("listening", zap.String("port", port))
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			logger.Log.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown, then close the DB pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
