// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	_ "blogspot/docs" // swagger docs
	"blogspot/internal/cache"
	"blogspot/internal/config"
	"blogspot/internal/database"
	"blogspot/internal/identity"
	"blogspot/internal/middleware"
	"blogspot/internal/models"
	"blogspot/internal/observability"
	"blogspot/internal/repository"
	"blogspot/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	tokenIssuer   = "blogspot-api"
	tokenAudience = "blogspot-admin"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	provider       identity.Provider

	tracingShutdown func(context.Context) error

	blogService        *service.BlogService
	commentService     *service.CommentService
	ticketService      *service.TicketService
	applicationService *service.ApplicationService
	categoryService    *service.CategoryService
	userService        *service.UserService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	tracingShutdown, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "blogspot-api",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingSampler,
	})
	if err != nil {
		return nil, fmt.Errorf("tracing initialization failed: %w", err)
	}

	provider := identity.NewClient(cfg.IdentityEndpoint, cfg.IdentityProject, cfg.IdentityKey)

	srv, err := NewServerWithDeps(cfg, db, cache.GetClient(), provider)
	if err != nil {
		return nil, err
	}
	srv.tracingShutdown = tracingShutdown
	return srv, nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis itself.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, provider identity.Provider) (*Server, error) {
	prom := middleware.InitMetrics("blogspot-api")

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		provider:       provider,
	}

	server.blogService = service.NewBlogService(repository.NewBlogRepository(db))
	server.commentService = service.NewCommentService(repository.NewCommentRepository(db))
	server.ticketService = service.NewTicketService(repository.NewTicketRepository(db))
	server.applicationService = service.NewApplicationService(repository.NewApplicationRepository(db))
	server.categoryService = service.NewCategoryService(repository.NewCategoryRepository(db))
	server.userService = service.NewUserService(provider)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Span per request. Must run before ContextMiddleware, which copies the
	// traceID local into the request context for the logger.
	app.Use(middleware.TracingMiddleware())

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS must run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5500"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they are handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(models.Envelope{
				Success: false,
				Message: "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "BlogSpot Backend Metrics Dashboard",
	}))

	// Swagger documentation
	api.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/logout", s.Logout)
	auth.Get("/verify", s.AuthRequired(), s.Verify)

	// Public blog routes
	blogs := api.Group("/blogs")
	blogs.Get("/", s.GetBlogs)
	blogs.Get("/search", middleware.RateLimit(
		s.redis, 10, time.Minute, "search"), s.SearchBlogs)
	blogs.Get("/stats", s.AuthRequired(), s.GetBlogStats)
	// Specific /:id/:resource routes BEFORE generic /:id route
	blogs.Post("/:id/views", s.RecordBlogView)
	blogs.Post("/:id/like", s.LikeBlog)
	blogs.Delete("/:id/like", s.UnlikeBlog)
	blogs.Get("/:id/comments", s.GetBlogComments)
	blogs.Get("/:id", s.GetBlog)

	// Public submission routes (rate limited per client)
	api.Post("/comments", middleware.RateLimit(
		s.redis, 5, time.Minute, "create_comment"), s.CreateComment)
	api.Post("/support", middleware.RateLimit(
		s.redis, 3, 5*time.Minute, "create_ticket"), s.CreateTicket)
	api.Post("/careers", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "create_application"), s.CreateApplication)

	// Public category listing
	api.Get("/categories", s.GetCategories)

	// Admin routes (session token required)
	protected := api.Group("", s.AuthRequired())

	adminBlogs := protected.Group("/blogs")
	adminBlogs.Post("/", s.CreateBlog)
	adminBlogs.Put("/:id/status", s.UpdateBlogStatus)
	adminBlogs.Put("/:id", s.UpdateBlog)
	adminBlogs.Delete("/:id", s.DeleteBlog)

	comments := protected.Group("/comments")
	comments.Get("/", s.GetComments)
	comments.Get("/stats", s.GetCommentStats)
	comments.Put("/:id/status", s.UpdateCommentStatus)
	comments.Delete("/:id", s.DeleteComment)

	support := protected.Group("/support")
	support.Get("/", s.GetTickets)
	support.Get("/stats", s.GetTicketStats)
	support.Put("/:id/status", s.UpdateTicketStatus)
	support.Delete("/:id", s.DeleteTicket)
	support.Get("/:id", s.GetTicket)

	careers := protected.Group("/careers")
	careers.Get("/", s.GetApplications)
	careers.Get("/stats", s.GetApplicationStats)
	careers.Put("/:id/status", s.UpdateApplicationStatus)
	careers.Delete("/:id", s.DeleteApplication)
	careers.Get("/:id", s.GetApplication)

	protected.Post("/categories", s.CreateCategory)

	users := protected.Group("/users")
	users.Get("/", s.GetUsers)
	users.Get("/stats", s.GetUserStats)
	users.Put("/:id/status", s.UpdateUserStatus)
	users.Put("/:id", s.UpdateUser)
	users.Delete("/:id", s.DeleteUser)
	users.Get("/:id", s.GetUser)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The API stays useful without Redis; caching and rate limits degrade.
		redisStatus = "unavailable"
	}

	identityStatus := "healthy"
	if s.provider != nil {
		if err := s.provider.Health(ctx); err != nil {
			identityStatus = "unhealthy"
		}
	} else {
		identityStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "BlogSpot API",
		"version": "1.0.0",
		"status":  overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
			"identity": identityStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns the authentication middleware for admin routes.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(s.config.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}

		if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != tokenIssuer {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token issuer"))
		}
		if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != tokenAudience {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token audience"))
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid subject claim"))
		}

		// Check JTI for revocation
		if jti, exists := claims["jti"].(string); exists && jti != "" {
			if s.redis != nil {
				isBlacklisted, err := s.redis.Exists(c.Context(), "blacklist:"+jti).Result()
				if err == nil && isBlacklisted > 0 {
					return models.RespondWithError(c, fiber.StatusUnauthorized,
						models.NewUnauthorizedError("Token has been revoked"))
				}
			}
		}

		// Store user ID in context
		c.Locals("userID", sub)
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, sub)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "BlogSpot API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewUpstreamError("Internal server error", err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.tracingShutdown != nil {
		if err := s.tracingShutdown(ctx); err != nil {
			log.Printf("error shutting down tracer: %v", err)
		}
	}

	cache.Close()

	log.Println("Server shutdown complete")
	return nil
}
