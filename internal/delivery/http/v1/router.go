package v1

import (
	"net/http"
	"time"

	"github.com/PhatNguyen203/DevConnecting/config"
	"github.com/PhatNguyen203/DevConnecting/internal/delivery/http/middleware"
	"github.com/PhatNguyen203/DevConnecting/internal/delivery/http/response"
	"github.com/PhatNguyen203/DevConnecting/internal/domain"
	"github.com/PhatNguyen203/DevConnecting/pkg/security"
	"github.com/PhatNguyen203/DevConnecting/pkg/token"
	"github.com/PhatNguyen203/DevConnecting/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	ProfileUC    domain.ProfileUsecase
	PostUC       domain.PostUsecase
	Tokens       *token.Service
	LoginTracker *security.LoginTracker
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimit(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Credential endpoints carry a stricter per-IP limit
	authLimited := api.Group("")
	authLimited.Use(middleware.RateLimit(middleware.AuthRateLimitConfig(deps.Config.RateLimitLoginThreshold, window)))

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthRequired(deps.Tokens))
	{
		NewUserHandler(authLimited, deps.AuthUC)
		NewAuthHandler(authLimited, protected, deps.AuthUC, deps.LoginTracker)
		NewProfileHandler(api, protected, deps.ProfileUC)
		NewPostHandler(protected, deps.PostUC)
	}

	return r
}
