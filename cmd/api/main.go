package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"petcare/docs"
	"petcare/internal/auth"
	"petcare/internal/cache"
	"petcare/internal/config"
	"petcare/internal/database"
	"petcare/internal/database/migration"
	handlers "petcare/internal/http/handler"
	"petcare/internal/http/middleware"
	"petcare/internal/inference"
	"petcare/internal/logger"
	"petcare/internal/mailer"
	"petcare/internal/model"
	"petcare/internal/notify"
	"petcare/internal/otel"
	"petcare/internal/repository/postgres"
	"petcare/internal/service"
	"petcare/internal/storage"
	"petcare/internal/worker"
)

// uploadBodyLimit caps request bodies; uploads and diagnosis images are the largest.
const uploadBodyLimit = 10 << 20

// @title PetCare API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()

	log := logger.New(cfg.LogLevel, loc)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}

	// PostgreSQL through otelsql + pgx, migrated on first start
	db, err := database.NewPostgres(cfg.Database, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	// S3-compatible object storage (MinIO)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatal("failed to initialize object storage", zap.Error(err))
	}

	tokens, err := auth.NewTokenIssuer(cfg.JWT)
	if err != nil {
		log.Fatal("failed to initialize token issuer", zap.Error(err))
	}

	var throttle cache.Throttle = cache.NoopThrottle{}
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer rdb.Close()
		throttle = cache.NewRedisThrottle(rdb, "otp:")
	}

	var mail mailer.Mailer = mailer.NewLogMailer(log)
	if cfg.SMTP.Host != "" {
		smtp, err := mailer.NewSMTP(cfg.SMTP)
		if err != nil {
			log.Fatal("failed to initialize smtp mailer", zap.Error(err))
		}
		mail = smtp
	}

	var symptoms inference.SymptomPredictor = inference.UnavailableSymptomModel{}
	if cfg.SymptomModel.ModelPath != "" {
		sm, err := inference.LoadSymptomModel(cfg.SymptomModel)
		if err != nil {
			log.Error("symptom model not loaded", zap.Error(err))
		} else {
			defer sm.Close()
			symptoms = sm
		}
	}

	// Repositories
	tx := database.NewTransactor(db)
	pets := postgres.NewPetPostgres(db)
	adoptionPosts := postgres.NewPostPostgres(db, model.PostAdoption)
	matingPosts := postgres.NewPostPostgres(db, model.PostMating)
	alerts := postgres.NewAlertPostgres(db)

	// Services
	rewards := service.NewRewardService(postgres.NewRewardPostgres(db), tx)
	notifications := service.NewNotificationService(postgres.NewPushTokenPostgres(db), notify.NewPushy(cfg.Pushy), log)

	svcs := handlers.Services{
		Accounts: service.NewAccountService(service.AccountDeps{
			Users:          postgres.NewUserPostgres(db),
			OTPs:           postgres.NewOTPPostgres(db),
			Tx:             tx,
			Tokens:         tokens,
			Mailer:         mail,
			Throttle:       throttle,
			Rewards:        rewards,
			OTPTTL:         cfg.OTP.TTL,
			ResendCooldown: cfg.OTP.ResendCooldown,
			Log:            log,
		}),
		Pets: service.NewPetService(pets, cfg.PublicBaseURL),
		Adoptions: service.NewMarketplaceService(service.MarketplaceDeps{
			Kind: model.PostAdoption, Posts: adoptionPosts, Pets: pets, Tx: tx,
			Rewards: rewards, BaseURL: cfg.PublicBaseURL, Log: log,
		}),
		Matings: service.NewMarketplaceService(service.MarketplaceDeps{
			Kind: model.PostMating, Posts: matingPosts, Pets: pets, Tx: tx,
			Rewards: rewards, BaseURL: cfg.PublicBaseURL, Log: log,
		}),
		Requests: service.NewRequestService(service.RequestDeps{
			Requests:  postgres.NewRequestPostgres(db),
			Pets:      pets,
			Adoptions: adoptionPosts,
			Matings:   matingPosts,
			Tx:        tx,
			Rewards:   rewards,
			Notifier:  notifications,
		}),
		Appointments:  service.NewAppointmentService(postgres.NewAppointmentPostgres(db), pets),
		Vaccinations:  service.NewVaccinationService(postgres.NewVaccinationPostgres(db), pets),
		Moods:         service.NewMoodService(postgres.NewMoodPostgres(db), pets),
		Alerts:        service.NewAlertService(alerts),
		Rewards:       rewards,
		Notifications: notifications,
		Diagnosis:     service.NewDiagnosisService(symptoms, inference.NewRoboflow(cfg.Roboflow), log),
		Uploads:       service.NewUploadService(objStore, postgres.NewUploadPostgres(db)),
	}

	// Reminder pushes
	worker.NewAlertDispatcher(alerts, notifications, log, cfg.AlertInterval).Start(ctx)

	// Metrics registry with Go runtime and process collectors
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal("failed to register metrics", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    uploadBodyLimit,
	})

	// Register global middleware
	app.Use(recover.New())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath
	})))
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(log))
	app.Use(metrics.Handler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, svcs, middleware.Auth(tokens))

	addr := ":" + cfg.Port
	go func() {
		log.Info("server listening", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			log.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing shutdown", zap.Error(err))
	}
}
