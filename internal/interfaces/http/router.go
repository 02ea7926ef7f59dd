package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	feedusecases "revu/internal/application/feed/usecases"
	followusecases "revu/internal/application/follow/usecases"
	reviewusecases "revu/internal/application/review/usecases"
	ticketusecases "revu/internal/application/ticket/usecases"
	userusecases "revu/internal/application/user/usecases"
	"revu/internal/infrastructure/auth"
	"revu/internal/infrastructure/config"
	"revu/internal/infrastructure/repository"
	authhandlers "revu/internal/interfaces/http/handlers/auth"
	feedhandlers "revu/internal/interfaces/http/handlers/feed"
	followhandlers "revu/internal/interfaces/http/handlers/follow"
	reviewhandlers "revu/internal/interfaces/http/handlers/review"
	tickethandlers "revu/internal/interfaces/http/handlers/ticket"
	"revu/internal/interfaces/http/middleware"
	"revu/internal/interfaces/http/routes"
	"revu/internal/shared/db"
	"revu/internal/shared/logger"
	"revu/internal/shared/services/markdown"
)

// Router wires repositories, use cases, handlers and middleware into a
// gin engine.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	authHandler    *authhandlers.AuthHandler
	ticketHandler  *tickethandlers.TicketHandler
	reviewHandler  *reviewhandlers.ReviewHandler
	followHandler  *followhandlers.FollowHandler
	feedHandler    *feedhandlers.FeedHandler
	authMiddleware *middleware.AuthMiddleware
	logger         logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(gdb *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	gin.SetMode(ginMode(cfg.Server.Mode))
	engine := gin.New()

	userRepo := repository.NewUserRepository(gdb)
	ticketRepo := repository.NewTicketRepository(gdb)
	reviewRepo := repository.NewReviewRepository(gdb)
	followRepo := repository.NewFollowRepository(gdb)

	txManager := db.NewTransactionManager(gdb)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	renderer := markdown.NewRenderer()

	registerUC := userusecases.NewRegisterUseCase(userRepo, hasher, log)
	loginUC := userusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	logoutUC := userusecases.NewLogoutUseCase(log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, reviewRepo, txManager, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)

	createReviewUC := reviewusecases.NewCreateReviewUseCase(reviewRepo, ticketRepo, log)
	updateReviewUC := reviewusecases.NewUpdateReviewUseCase(reviewRepo, log)
	deleteReviewUC := reviewusecases.NewDeleteReviewUseCase(reviewRepo, log)
	getReviewUC := reviewusecases.NewGetReviewUseCase(reviewRepo, log)
	createTicketWithReviewUC := reviewusecases.NewCreateTicketWithReviewUseCase(ticketRepo, reviewRepo, txManager, log)

	followUserUC := followusecases.NewFollowUserUseCase(followRepo, userRepo, log)
	unfollowUserUC := followusecases.NewUnfollowUserUseCase(followRepo, log)
	listSubscriptionsUC := followusecases.NewListSubscriptionsUseCase(followRepo, userRepo, log)

	composeFeedUC := feedusecases.NewComposeFeedUseCase(ticketRepo, reviewRepo, followRepo, userRepo, renderer, log)

	return &Router{
		engine:         engine,
		cfg:            cfg,
		authHandler:    authhandlers.NewAuthHandler(registerUC, loginUC, logoutUC, cfg.Auth.JWT.AccessExpMinutes),
		ticketHandler:  tickethandlers.NewTicketHandler(createTicketUC, updateTicketUC, deleteTicketUC, getTicketUC),
		reviewHandler:  reviewhandlers.NewReviewHandler(createReviewUC, updateReviewUC, deleteReviewUC, getReviewUC, createTicketWithReviewUC),
		followHandler:  followhandlers.NewFollowHandler(followUserUC, unfollowUserUC, listSubscriptionsUC),
		feedHandler:    feedhandlers.NewFeedHandler(composeFeedUC),
		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),
		logger:         log,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupFeedRoutes(r.engine, &routes.FeedRouteConfig{
		FeedHandler:    r.feedHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupReviewRoutes(r.engine, &routes.ReviewRouteConfig{
		ReviewHandler:  r.reviewHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupFollowRoutes(r.engine, &routes.FollowRouteConfig{
		FollowHandler:  r.followHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
