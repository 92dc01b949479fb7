package v1

import (
	"net/http"
	"time"

	"go-quote-backend/config"
	"go-quote-backend/internal/delivery/http/middleware"
	"go-quote-backend/internal/delivery/http/response"
	"go-quote-backend/internal/domain"
	"go-quote-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	QuoteUC   domain.QuoteUsecase
	CatalogUC usecase.CatalogUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public routes: catalog listing and the quote form submit,
	// the latter with its own tighter rate limit
	NewCatalogHandler(v1, deps.CatalogUC)

	public := v1.Group("")
	public.Use(middleware.RateLimitMiddleware(middleware.SubmitRateLimitConfig(deps.Config.RateLimitSubmitThreshold, window)))

	// Admin reads behind the static service key
	admin := v1.Group("")
	admin.Use(middleware.AdminKeyMiddleware(deps.Config.AdminAPIKey))

	NewQuoteHandler(public, admin, deps.QuoteUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
