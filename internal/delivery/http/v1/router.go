package v1

import (
	"net/http"
	"time"

	"go-talentmatch-backend/config"
	"go-talentmatch-backend/internal/delivery/http/middleware"
	"go-talentmatch-backend/internal/delivery/http/response"
	"go-talentmatch-backend/internal/domain"
	"go-talentmatch-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	CandidateUC domain.CandidateUsecase
	EmployerUC  domain.EmployerUsecase
	RequestUC   domain.RequestUsecase
	MatchingUC  domain.MatchingUsecase
	StatsUC     domain.StatsUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitGlobalThreshold,
		Window:    window,
		KeyPrefix: "rl:global",
	}))

	v1 := r.Group("/v1")

	// Health Check. Redis is optional, so its state is reported rather than
	// failing the check.
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", gin.H{
			"redis": redis.IsAvailable(),
		})
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Candidate submission stays public but gets its own tighter limiter.
	submitLimiter := middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitSubmitThreshold,
		Window:    window,
		KeyPrefix: "rl:submit",
	})

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config))
	{
		NewCandidateHandler(v1, protected, deps.CandidateUC, submitLimiter)
		NewEmployerHandler(protected, deps.EmployerUC)
		NewRequestHandler(protected, deps.RequestUC, deps.EmployerUC)
		NewMatchingHandler(protected, deps.MatchingUC, deps.EmployerUC)

		admin := protected.Group("/admin")
		admin.Use(middleware.RequireRole("admin"))
		NewAdminHandler(admin, deps.CandidateUC, deps.RequestUC, deps.StatsUC)
	}

	return r
}
