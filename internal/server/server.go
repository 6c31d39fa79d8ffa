package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Freaksthegeeks/GymBook/internal/auth"
	"github.com/Freaksthegeeks/GymBook/internal/client"
	"github.com/Freaksthegeeks/GymBook/internal/config"
	"github.com/Freaksthegeeks/GymBook/internal/email"
	"github.com/Freaksthegeeks/GymBook/internal/gym"
	"github.com/Freaksthegeeks/GymBook/internal/lead"
	"github.com/Freaksthegeeks/GymBook/internal/payment"
	"github.com/Freaksthegeeks/GymBook/internal/plan"
	"github.com/Freaksthegeeks/GymBook/internal/report"
	"github.com/Freaksthegeeks/GymBook/internal/staff"
	"github.com/Freaksthegeeks/GymBook/internal/user"
)

type Server struct {
	router  *gin.Engine
	httpSrv *http.Server
	db      *sqlx.DB
	config  *config.Config
	email   *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	gymRepo := gym.NewRepository(db)
	planRepo := plan.NewRepository(db)
	clientRepo := client.NewRepository(db)

	userHandler := user.NewHandler(user.NewService(user.NewRepository(db), gymRepo, cfg.JWTSecret))
	gymHandler := gym.NewHandler(gym.NewService(gymRepo, cfg.JWTSecret))
	planHandler := plan.NewHandler(plan.NewService(planRepo))
	clientHandler := client.NewHandler(client.NewService(clientRepo, planRepo, emailService))
	paymentHandler := payment.NewHandler(payment.NewService(payment.NewRepository(db), emailService))
	staffHandler := staff.NewHandler(staff.NewRepository(db))
	leadHandler := lead.NewHandler(lead.NewRepository(db))
	reportHandler := report.NewHandler(report.NewRepository(db))

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.Refresh)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)

	// Gym selection works without an active gym claim; everything below
	// /gyms requires one.
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.POST("/gyms", gymHandler.Create)
		protected.GET("/gyms", gymHandler.ListMine)
		protected.GET("/gyms/current", gymHandler.Current)
		protected.POST("/gyms/switch", gymHandler.Switch)
	}

	scoped := router.Group("/")
	scoped.Use(authMiddleware, auth.RequireGym())
	{
		scoped.POST("/plans", planHandler.Create)
		scoped.GET("/plans", planHandler.List)
		scoped.GET("/plans/:planID", planHandler.GetByID)
		scoped.PUT("/plans/:planID", planHandler.Update)
		scoped.DELETE("/plans/:planID", planHandler.Delete)

		scoped.POST("/clients", clientHandler.Create)
		scoped.GET("/clients", clientHandler.List)
		scoped.GET("/clients/birthdays", clientHandler.Birthdays)
		scoped.GET("/clients/:clientID", clientHandler.GetByID)
		scoped.PUT("/clients/:clientID", clientHandler.UpdateProfile)
		scoped.POST("/clients/:clientID/renew", clientHandler.Renew)
		scoped.DELETE("/clients/:clientID", clientHandler.Delete)

		scoped.POST("/payments", paymentHandler.Record)
		scoped.GET("/payments", paymentHandler.List)
		scoped.PUT("/payments/:paymentID", paymentHandler.Update)
		scoped.DELETE("/payments/:paymentID", paymentHandler.Delete)

		scoped.POST("/staff", staffHandler.Create)
		scoped.GET("/staff", staffHandler.List)
		scoped.GET("/staff/:staffID", staffHandler.GetByID)
		scoped.PUT("/staff/:staffID", staffHandler.Update)
		scoped.DELETE("/staff/:staffID", staffHandler.Delete)

		scoped.POST("/leads", leadHandler.Create)
		scoped.GET("/leads", leadHandler.List)
		scoped.GET("/leads/:leadID", leadHandler.GetByID)
		scoped.PUT("/leads/:leadID", leadHandler.Update)
		scoped.DELETE("/leads/:leadID", leadHandler.Delete)

		scoped.GET("/dashboard", reportHandler.Dashboard)
		scoped.GET("/reports/revenue", reportHandler.Revenue)
		scoped.GET("/reports/revenue/plans", reportHandler.RevenueByPlan)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.httpSrv = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
