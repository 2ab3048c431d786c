package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/ostech-br/os-manager/internal/audit"
	"github.com/ostech-br/os-manager/internal/config"
	"github.com/ostech-br/os-manager/internal/handlers"
	"github.com/ostech-br/os-manager/internal/httperr"
	infraRepo "github.com/ostech-br/os-manager/internal/infra/repository"
	"github.com/ostech-br/os-manager/internal/middleware"
	"github.com/ostech-br/os-manager/internal/token"
	ucmetrics "github.com/ostech-br/os-manager/internal/usecase/metrics"
	ucorder "github.com/ostech-br/os-manager/internal/usecase/order"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	redisClient *redis.Client,
	cfg *config.Config,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// rate limit → security headers → cors → sanitização;
	// request log e o tradutor de erros envolvem tudo.
	// ======================================================
	r.Use(middleware.RequestLog())
	r.Use(middleware.ErrorHandler(cfg.IsDevelopment()))
	r.Use(middleware.RateLimit(redisClient, cfg.RateLimitWindow, cfg.RateLimitMax))
	r.Use(middleware.SecureHeaders())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.Sanitize())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	tokens := token.NewService(cfg.JWTSecret, cfg.JWTTTL)

	orderRepo := infraRepo.NewOrderGormRepository(db)
	metricsRepo := infraRepo.NewMetricsGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createOrderUC := ucorder.NewCreateServiceOrder(orderRepo, auditDispatcher)
	metricsService := ucmetrics.NewService(metricsRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, tokens, auditDispatcher)
	clientHandler := handlers.NewClientHandler(db, auditDispatcher)
	orderHandler := handlers.NewServiceOrderHandler(orderRepo, createOrderUC, auditDispatcher)
	metricsHandler := handlers.NewMetricsHandler(metricsService)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// ROTAS PÚBLICAS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Sistema de Ordens de Serviço",
			"version": "1.0.0",
			"endpoints": gin.H{
				"clients":        "/api/clients",
				"service_orders": "/api/service-orders",
				"metrics":        "/api/metrics",
				"health":         "/health",
			},
		})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.GET("/auth/me", authHandler.Me)
			secured.GET("/auth/verify", authHandler.Verify)

			// CLIENTS
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			// SERVICE ORDERS
			secured.GET("/service-orders", orderHandler.List)
			secured.POST("/service-orders", orderHandler.Create)
			secured.GET("/service-orders/:id", orderHandler.Get)
			secured.PUT("/service-orders/:id", orderHandler.Update)
			secured.DELETE("/service-orders/:id", orderHandler.Delete)

			// METRICS
			secured.GET("/metrics/dashboard", metricsHandler.Dashboard)
			secured.GET("/metrics/charts", metricsHandler.Charts)
			secured.GET("/metrics/revenue", metricsHandler.Revenue)

			// AUDIT
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	// Rota não mapeada → envelope padrão de NotFound.
	r.NoRoute(func(c *gin.Context) {
		app := httperr.NotFound("route not found: " + c.Request.URL.Path)
		c.JSON(app.Status, httperr.NewEnvelope(app, ""))
	})
}
