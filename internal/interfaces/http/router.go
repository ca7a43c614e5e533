// Package http wires the HTTP interface: repositories, use cases, handlers
// and routes are constructed here from infrastructure handles.
package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	bookusecases "mentorhub/internal/application/booking/usecases"
	catalogusecases "mentorhub/internal/application/catalog/usecases"
	"mentorhub/internal/application/payment/bridge"
	"mentorhub/internal/application/payment/surface"
	payusecases "mentorhub/internal/application/payment/usecases"
	resusecases "mentorhub/internal/application/resource/usecases"
	subusecases "mentorhub/internal/application/subscription/usecases"
	userusecases "mentorhub/internal/application/user/usecases"
	"mentorhub/internal/infrastructure/auth"
	"mentorhub/internal/infrastructure/cache"
	"mentorhub/internal/infrastructure/config"
	"mentorhub/internal/infrastructure/email"
	"mentorhub/internal/infrastructure/ratelimit"
	"mentorhub/internal/infrastructure/repository"
	"mentorhub/internal/interfaces/http/handlers"
	"mentorhub/internal/interfaces/http/middleware"
	"mentorhub/internal/interfaces/http/routes"
	"mentorhub/internal/shared/biztime"
	"mentorhub/internal/shared/logger"
	"mentorhub/internal/shared/services/markdown"
	"mentorhub/internal/shared/services/storage"
)

// Router owns the gin engine and the object graph behind it.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface
}

// NewRouter builds the full HTTP object graph.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	engine.Use(middleware.Recovery())
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Repositories.
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	recordRepo := repository.NewSubscriptionRecordRepository(db)
	postRepo := repository.NewPostRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Infrastructure services.
	clock := biztime.UTCClock{}
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	emailService := email.NewSMTPEmailService(&cfg.Email)
	sessionIndex := cache.NewPaymentSessionIndex(redisClient)
	markdownService := markdown.NewService()

	store, err := storage.NewLocalService(cfg.Storage.RootDir, cfg.Storage.PublicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	paymentSurface, err := surface.New(&cfg.Payment)
	if err != nil {
		return nil, fmt.Errorf("failed to init payment surface: %w", err)
	}
	paymentBridge := bridge.New(log)

	// Use cases.
	registerUC := userusecases.NewRegisterUseCase(userRepo, hasher, log)
	loginUC := userusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	updateProfileUC := userusecases.NewUpdateProfileUseCase(userRepo, log)
	uploadProfileUC := userusecases.NewUploadProfileObjectUseCase(userRepo, store, log)
	listMentorsUC := userusecases.NewListMentorsUseCase(userRepo, log)

	contentGate := subusecases.NewContentGate(recordRepo, clock, log)
	requestSubUC := subusecases.NewRequestSubscriptionUseCase(recordRepo, catalogRepo, clock, log)
	activateUC := subusecases.NewActivateRecordUseCase(recordRepo, cfg.Subscription.DurationDays, clock, log)
	listSubsUC := subusecases.NewListUserSubscriptionsUseCase(recordRepo, clock, log)

	listDomainsUC := catalogusecases.NewListDomainsUseCase(catalogRepo, contentGate, log)
	createDomainUC := catalogusecases.NewCreateDomainUseCase(catalogRepo, log)

	openSessionUC := payusecases.NewOpenPaymentSessionUseCase(
		paymentBridge,
		paymentSurface,
		requestSubUC,
		activateUC,
		recordRepo,
		sessionIndex,
		emailService,
		cfg.Payment.LoadTimeout,
		cfg.Payment.SuccessCloseDelay,
		cfg.Payment.SessionTTL,
		log,
	)
	signalUC := payusecases.NewHandlePaymentSignalUseCase(paymentBridge, log)
	closeSessionUC := payusecases.NewClosePaymentSessionUseCase(paymentBridge, log)
	retryActivationUC := payusecases.NewRetryActivationUseCase(recordRepo, activateUC, log)

	listContentUC := resusecases.NewListDomainContentUseCase(postRepo, contentGate, markdownService, store, log)
	createPostUC := resusecases.NewCreatePostUseCase(postRepo, catalogRepo, clock, log)
	uploadBannerUC := resusecases.NewUploadPostBannerUseCase(postRepo, store, log)
	publishScheduledUC := resusecases.NewPublishScheduledUseCase(postRepo, clock, log)

	createBookingUC := bookusecases.NewCreateBookingUseCase(bookingRepo, userRepo, log)
	respondBookingUC := bookusecases.NewRespondBookingUseCase(bookingRepo, log)
	listBookingsUC := bookusecases.NewListBookingsUseCase(bookingRepo, log)

	// Handlers and middleware.
	authMW := middleware.NewAuthMiddleware(jwtService, userRepo, log)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC, store, log)
	profileHandler := handlers.NewProfileHandler(updateProfileUC, uploadProfileUC, listMentorsUC, userRepo, store, log)
	catalogHandler := handlers.NewCatalogHandler(listDomainsUC, createDomainUC, store, log)
	subscriptionHandler := handlers.NewSubscriptionHandler(requestSubUC, listSubsUC, log)
	paymentHandler := handlers.NewPaymentHandler(openSessionUC, signalUC, closeSessionUC, log)
	resourceHandler := handlers.NewResourceHandler(listContentUC, createPostUC, uploadBannerUC, log)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, respondBookingUC, listBookingsUC, log)
	jobsHandler := handlers.NewJobsHandler(publishScheduledUC, retryActivationUC, log)

	rateLimiter := ratelimit.NewRedisRateLimiter(redisClient)
	authRateLimit := middleware.RateLimit(rateLimiter, ratelimit.Limit{Requests: 20, Window: time.Minute}, log)

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    authHandler,
		ProfileHandler: profileHandler,
		AuthMiddleware: authMW,
		RateLimit:      authRateLimit,
	})
	routes.SetupCatalogRoutes(engine, &routes.CatalogRouteConfig{
		CatalogHandler: catalogHandler,
		AuthMiddleware: authMW,
	})
	routes.SetupSubscriptionRoutes(engine, &routes.SubscriptionRouteConfig{
		SubscriptionHandler: subscriptionHandler,
		AuthMiddleware:      authMW,
	})
	routes.SetupPaymentRoutes(engine, &routes.PaymentRouteConfig{
		PaymentHandler: paymentHandler,
		AuthMiddleware: authMW,
	})
	routes.SetupResourceRoutes(engine, &routes.ResourceRouteConfig{
		ResourceHandler: resourceHandler,
		AuthMiddleware:  authMW,
	})
	routes.SetupBookingRoutes(engine, &routes.BookingRouteConfig{
		BookingHandler: bookingHandler,
		AuthMiddleware: authMW,
	})
	routes.SetupJobsRoutes(engine, &routes.JobsRouteConfig{
		JobsHandler: jobsHandler,
		Token:       cfg.Jobs.Token,
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	engine.Static("/static", cfg.Storage.RootDir)

	return &Router{engine: engine, cfg: cfg, logger: log}, nil
}

// Engine exposes the underlying gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server on the configured address.
func (r *Router) Run() error {
	addr := r.cfg.Server.GetAddr()
	r.logger.Infow("starting HTTP server", "addr", addr)
	return r.engine.Run(addr)
}
