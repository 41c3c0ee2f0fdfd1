package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/tripora/tripora-api/internal/interface/http"
)

// ReviewModule wires place review routes.
type ReviewModule struct {
	Handler *handlers.ReviewHandler
}

func NewReviewModule(h *handlers.ReviewHandler) *ReviewModule {
	return &ReviewModule{Handler: h}
}

func (m *ReviewModule) Register(rg *gin.RouterGroup) {
	rg.POST("/reviews", m.Handler.Create)
	rg.GET("/reviews", m.Handler.List)
}
