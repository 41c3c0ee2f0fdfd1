package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/tripora/tripora-api/internal/interface/http"
	"github.com/tripora/tripora-api/internal/interface/middleware"
	"github.com/tripora/tripora-api/pkg/helpers"
)

// UserModule wires the account management glue endpoints, all protected.
type UserModule struct {
	Handler *handlers.UserHandler
	Tokens  *helpers.TokenManager
}

func NewUserModule(h *handlers.UserHandler, tokens *helpers.TokenManager) *UserModule {
	return &UserModule{Handler: h, Tokens: tokens}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/users")
	auth.Use(middleware.Auth(m.Tokens))
	{
		auth.GET("", m.Handler.List)
		auth.PUT("/:email", m.Handler.Update)
		auth.DELETE("/:email", m.Handler.Delete)
	}
}
