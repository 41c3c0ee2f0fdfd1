package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tripora/tripora-api/internal/container"
	handlers "github.com/tripora/tripora-api/internal/interface/http"
	"github.com/tripora/tripora-api/internal/interface/middleware"
	"github.com/tripora/tripora-api/pkg/helpers"
)

// AuthModule wires registration, login, and the authenticated user lookup.
// Public: POST /api/auth/register, POST /api/auth/login
// Protected: GET /api/user
type AuthModule struct {
	Handler *handlers.AuthHandler
	Tokens  *helpers.TokenManager
}

func NewAuthModule(h *handlers.AuthHandler, tokens *helpers.TokenManager) *AuthModule {
	return &AuthModule{Handler: h, Tokens: tokens}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Tokens))
	{
		auth.GET("/user", m.Handler.Me)
	}
}
