package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tripora/tripora-api/internal/application"
	"github.com/tripora/tripora-api/internal/domain/entity"
	"github.com/tripora/tripora-api/pkg/response"
	"github.com/tripora/tripora-api/pkg/validation"
)

// ReviewHandler serves place reviews.
type ReviewHandler struct {
	Svc    *application.ReviewService
	Logger *logrus.Logger
}

func NewReviewHandler(svc *application.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{Svc: svc, Logger: logger}
}

type reviewRequest struct {
	UserID  string `json:"userId" binding:"required,uuid"`
	PlaceID string `json:"placeId" binding:"required,uuid"`
	Rating  *int   `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

type reviewView struct {
	ID      string `json:"id"`
	UserID  string `json:"userId"`
	PlaceID string `json:"placeId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Author  string `json:"author,omitempty"`
}

func toReviewView(r entity.Review, author string) reviewView {
	return reviewView{
		ID:      r.ID,
		UserID:  r.UserID,
		PlaceID: r.PlaceID,
		Rating:  r.Rating,
		Comment: r.Comment,
		Author:  author,
	}
}

// Create POST /api/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "all fields are required", validation.ToDetails(err))
		return
	}

	rev, err := h.Svc.AddReview(c.Request.Context(), application.ReviewInput{
		UserID:  req.UserID,
		PlaceID: req.PlaceID,
		Rating:  *req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		if errors.Is(err, application.ErrRatingOutOfRange) {
			response.Error[any](c, http.StatusBadRequest, "Rating must be between 1 and 5", nil)
			return
		}
		h.Logger.WithError(err).Error("add review failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusCreated, toReviewView(*rev, ""), "review added", nil)
}

// List GET /api/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.Svc.ListReviews(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list reviews failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	out := make([]reviewView, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewView(r.Review, r.AuthorName))
	}
	response.Success(c, http.StatusOK, out, "reviews", nil)
}
