package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/tripora/tripora-api/internal/interface/http"
)

// BookingModule wires payment records and booking aggregation.
type BookingModule struct {
	Handler *handlers.PaymentHandler
}

func NewBookingModule(h *handlers.PaymentHandler) *BookingModule {
	return &BookingModule{Handler: h}
}

func (m *BookingModule) Register(rg *gin.RouterGroup) {
	rg.POST("/payments", m.Handler.Create)
	rg.GET("/payments", m.Handler.List)
	rg.GET("/bookings/:name", m.Handler.Bookings)
}
