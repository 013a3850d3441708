package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"learnsmate_backend/internals/configs"
	database "learnsmate_backend/internals/databases"
	issueCouponService "learnsmate_backend/internals/features/coupons/issue_coupons/service"
	paymentService "learnsmate_backend/internals/features/payments/service"
	"learnsmate_backend/internals/features/users/auth/scheduler"
	authService "learnsmate_backend/internals/features/users/auth/service"
	verificationService "learnsmate_backend/internals/features/users/verification/service"
	"learnsmate_backend/internals/features/users/verification/store"
	helperOSS "learnsmate_backend/internals/helpers/oss"
	helperSMS "learnsmate_backend/internals/helpers/sms"
	"learnsmate_backend/internals/logger"
	middlewares "learnsmate_backend/internals/middlewares"
	routes "learnsmate_backend/internals/route"
	"learnsmate_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          middlewares.ErrorHandler,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	// metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	prom, err := middlewares.NewPrometheusMiddleware(reg)
	if err != nil {
		logger.Log.WithError(err).Fatal("prometheus middleware")
	}
	app.Use(prom.Handler())
	if err := issueCouponService.RegisterMetrics(reg); err != nil {
		logger.Log.WithError(err).Fatal("coupon metrics")
	}
	if err := paymentService.RegisterMetrics(reg); err != nil {
		logger.Log.WithError(err).Fatal("payment metrics")
	}

	// DB connect + pool + warm-up
	db, err := database.ConnectDB()
	if err != nil {
		logger.Log.WithError(err).Fatal("database connection failed")
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Log.WithError(err).Fatal("migration failed")
	}
	database.TunePool(db)
	database.WarmUpQueries(db)

	if configs.GetEnvBool("RUN_SEEDS", false) {
		if err := seeds.RunAllSeeds(context.Background(), db); err != nil {
			logger.Log.WithError(err).Fatal("seeding failed")
		}
	}

	rdb, err := database.ConnectRedis(configs.Redis())
	if err != nil {
		logger.Log.WithError(err).Fatal("redis connection failed")
	}

	sms := helperSMS.NewCoolSmsClient(configs.CoolSms(), nil)
	verification := verificationService.NewVerificationService(store.NewRedisCodeStore(rdb), sms)

	storage, err := helperOSS.NewMinIOStorage(configs.MinIO())
	if err != nil {
		logger.Log.WithError(err).Warn("minio unavailable, image uploads disabled")
		storage = nil
	}

	midtrans := configs.Midtrans()
	if midtrans.ServerKey == "" {
		logger.Log.Warn("MIDTRANS_SERVER_KEY is not set, checkout disabled")
	}

	auth := routes.SetupRoutes(app, db, routes.Deps{
		Verification:      verification,
		Google:            authService.NewGoogleVerifier(configs.GoogleClientID),
		Storage:           storage,
		Gateway:           paymentService.NewMidtransGateway(midtrans),
		MidtransServerKey: midtrans.ServerKey,
		Metrics:           reg,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// scheduler after DB is ready
	cleanupDone := scheduler.StartRevokedTokenCleanupScheduler(ctx, auth, configs.TokenCleanupTick)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "8080")
	go func() {
		logger.Log.Infof("listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			logger.Log.WithError(err).Fatal("server error")
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(shutdownCtx)
	<-cleanupDone

	_ = rdb.Close()
	database.Close(db)
}
