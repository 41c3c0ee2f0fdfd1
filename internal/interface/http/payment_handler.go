package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tripora/tripora-api/internal/application"
	"github.com/tripora/tripora-api/internal/domain/entity"
	"github.com/tripora/tripora-api/pkg/response"
	"github.com/tripora/tripora-api/pkg/validation"
)

// PaymentHandler serves payment records and booking aggregation.
type PaymentHandler struct {
	Svc    *application.BookingService
	Logger *logrus.Logger
}

func NewPaymentHandler(svc *application.BookingService, logger *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{Svc: svc, Logger: logger}
}

type paymentRequest struct {
	Name         string  `json:"name" binding:"required"`
	Mobile       string  `json:"mobile" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	PackageTitle string  `json:"packageTitle" binding:"required"`
	PaymentID    string  `json:"paymentId" binding:"required"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
}

type paymentView struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Mobile       string  `json:"mobile"`
	Email        string  `json:"email"`
	PackageTitle string  `json:"packageTitle"`
	PaymentID    string  `json:"paymentId"`
	Amount       float64 `json:"amount"`
}

func toPaymentView(p entity.Payment) paymentView {
	return paymentView{
		ID:           p.ID,
		Name:         p.Name,
		Mobile:       p.Mobile,
		Email:        p.Email,
		PackageTitle: p.PackageTitle,
		PaymentID:    p.PaymentRef,
		Amount:       p.Amount,
	}
}

type bookingView struct {
	Customer paymentView `json:"customer"`
	Package  packageView `json:"package"`
}

// Create POST /api/payments
func (h *PaymentHandler) Create(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "all fields are required", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.RecordPayment(c.Request.Context(), application.PaymentInput{
		Name:         req.Name,
		Mobile:       req.Mobile,
		Email:        req.Email,
		PackageTitle: req.PackageTitle,
		PaymentRef:   req.PaymentID,
		Amount:       req.Amount,
	})
	if err != nil {
		h.Logger.WithError(err).Error("record payment failed")
		response.Error[any](c, http.StatusInternalServerError, "Failed to save payment details", nil)
		return
	}
	response.Success(c, http.StatusCreated, toPaymentView(*p), "Payment details saved successfully", nil)
}

// List GET /api/payments
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.Svc.ListPayments(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list payments failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	out := make([]paymentView, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentView(p))
	}
	response.Success(c, http.StatusOK, out, "payments", nil)
}

// Bookings GET /api/bookings/:name
func (h *PaymentHandler) Bookings(c *gin.Context) {
	bookings, err := h.Svc.BookingsFor(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.Logger.WithError(err).Error("bookings lookup failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	out := make([]bookingView, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, bookingView{Customer: toPaymentView(b.Customer), Package: toPackageView(b.Package)})
	}
	response.Success(c, http.StatusOK, out, "bookings", nil)
}
