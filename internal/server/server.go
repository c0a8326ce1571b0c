package server

import (
	"context"
	"net/http"

	"pulsefit/internal/auth"
	"pulsefit/internal/booking"
	"pulsefit/internal/catalog"
	"pulsefit/internal/config"
	"pulsefit/internal/contact"
	"pulsefit/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	config *config.Config
	srv    *http.Server
}

func New(db *sqlx.DB, cfg *config.Config, relay *contact.Relay) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())

	catalogRepo := catalog.NewRepository(db)
	userRepo := user.NewRepository(db)
	bookingRepo := booking.NewRepository(db)

	catalogService := catalog.NewService(catalogRepo)
	userService := user.NewService(userRepo)
	bookingService := booking.NewService(
		bookingRepo,
		catalogRepo,
		userRepo,
		cfg.EnforceCapacity,
		cfg.RejectDuplicates,
	)

	catalogHandler := catalog.NewHandler(catalogService)
	userHandler := user.NewHandler(userService)
	bookingHandler := booking.NewHandler(bookingService)
	contactHandler := contact.NewHandler(relay)

	// Schedule reads and the contact form need no session.
	router.GET("/api/classes", catalogHandler.ListClasses)
	router.POST("/api/contact", RateLimitMiddleware(1, 5), contactHandler.Submit)

	sessionMiddleware := auth.Middleware(cfg.SessionSecret)

	member := router.Group("/api")
	member.Use(sessionMiddleware)
	{
		member.POST("/bookings", bookingHandler.Create)
		member.GET("/bookings", bookingHandler.ListMine)
		member.POST("/users/sync", userHandler.Sync)
	}

	adminPolicy := auth.NewAdminPolicy(cfg.AdminEmail)
	admin := router.Group("/api/admin")
	admin.Use(sessionMiddleware, auth.RequireAdmin(adminPolicy))
	{
		admin.GET("/trainers", catalogHandler.ListTrainers)
		admin.POST("/trainers", catalogHandler.CreateTrainer)
		admin.GET("/classes", catalogHandler.ListClasses)
		admin.POST("/classes", catalogHandler.CreateClass)
		admin.GET("/bookings", bookingHandler.ListAll)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.srv = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
