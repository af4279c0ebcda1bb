package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flowerdecor/config"
	"flowerdecor/database"
	adminRepo "flowerdecor/database/repository/admin"
	bookingRepo "flowerdecor/database/repository/booking"
	eventRepo "flowerdecor/database/repository/event"
	serviceRepo "flowerdecor/database/repository/service"
	testimonialRepo "flowerdecor/database/repository/testimonial"
	"flowerdecor/handlers"
	"flowerdecor/middleware"
	"flowerdecor/routes"
	"flowerdecor/services/admin"
	"flowerdecor/services/booking"
	"flowerdecor/services/contact"
	"flowerdecor/services/content"
	"flowerdecor/services/notification"
	"flowerdecor/services/storage"
	"flowerdecor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	bg, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	db, err := database.InitDB(cfg, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo(db)
	admins := adminRepo.NewMongoAdminRepo(db)
	services := serviceRepo.NewMongoServiceRepo(db)
	events := eventRepo.NewMongoEventRepo(db)
	testimonials := testimonialRepo.NewMongoTestimonialRepo(db)

	indexCtx, cancelIndexes := context.WithTimeout(bg, 10*time.Second)
	if err := bookings.EnsureIndexes(indexCtx); err != nil {
		logger.Warn("main: booking indexes not ensured", zap.Error(err))
	}
	if err := admins.EnsureIndexes(indexCtx); err != nil {
		logger.Warn("main: admin indexes not ensured", zap.Error(err))
	}
	cancelIndexes()

	healthDeps := map[string]utils.Pinger{"mongo": utils.PingFunc(database.Ping)}

	// Redis only backs the content cache; without it lists are read straight from Mongo.
	var contentCache content.Cache
	if redisClient, err := utils.NewCacheClient(cfg); err != nil {
		logger.Warn("main: content cache disabled", zap.Error(err))
	} else {
		defer redisClient.Close()
		redisCache := utils.NewRedisCache(redisClient)
		contentCache = redisCache
		healthDeps["redis"] = redisCache
	}

	var sender notification.Sender = notification.DisabledSender{}
	if mailer, err := notification.NewSMTPMailer(cfg, logger.Named("mail")); err != nil {
		logger.Warn("main: email transporter not configured; bookings and contact messages will be refused", zap.Error(err))
	} else {
		verifyCtx, cancelVerify := context.WithTimeout(bg, cfg.MailTimeout)
		if err := mailer.Verify(verifyCtx); err != nil {
			logger.Warn("main: SMTP relay did not verify at startup", zap.String("host", cfg.SMTPHost), zap.Error(err))
		}
		cancelVerify()
		sender = mailer
	}

	var images storage.ImageStore = storage.DisabledStore{}
	if store, err := storage.NewCloudinaryStore(cfg, logger.Named("storage")); err != nil {
		logger.Warn("main: image storage disabled", zap.Error(err))
	} else {
		images = store
	}

	if cfg.JWTSecret == "" {
		logger.Warn("main: JWT_SECRET is empty; admin login will fail")
	}

	// services.
	intake := booking.NewIntakePipeline(
		bookings,
		sender,
		booking.NewIDGenerator(cfg.BookingIDScheme),
		booking.PipelineConfig{
			OperatorEmail: cfg.AdminEmail,
			StoreTimeout:  cfg.StoreTimeout,
			MailTimeout:   cfg.MailTimeout,
		},
		logger.Named("booking"),
	)
	contactRelay := contact.NewPipeline(sender, cfg.ContactEmail, cfg.MailTimeout, logger.Named("contact"))
	contentService := content.NewContentService(content.Deps{
		Services:     services,
		Events:       events,
		Testimonials: testimonials,
		Bookings:     bookings,
		Images:       images,
		Cache:        contentCache,
		CacheTTL:     cfg.ContentCacheTTL,
	}, logger.Named("content"))
	adminService := admin.NewAdminService(admins, utils.NewTokenIssuer(cfg.JWTSecret, cfg.AdminTokenTTL), logger.Named("admin"))

	monitor := utils.NewHealthMonitor(healthDeps)
	monitor.Start(bg, 30*time.Second)

	limiter := middleware.NewRateLimiter(cfg.MaxRequestsPerMin)
	go limiter.Run(bg, time.Minute)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AdminService: adminService,
		Booking:      handlers.NewBookingHandler(intake, bookings),
		Contact:      handlers.NewContactHandler(contactRelay),
		Content:      handlers.NewContentHandler(contentService),
		Admin:        handlers.NewAdminHandler(adminService),
		Storage:      handlers.NewStorageHandler(images),
		Health:       handlers.NewHealthHandler(monitor),
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(limiter.Middleware())

	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stopBackground()

	// In-flight intakes may still be waiting on SMTP; give them the mail timeout.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.MailTimeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Errorf("main: mongo disconnect: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
