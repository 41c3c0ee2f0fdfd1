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

// PlaceHandler serves the destination catalog.
type PlaceHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewPlaceHandler(svc *application.CatalogService, logger *logrus.Logger) *PlaceHandler {
	return &PlaceHandler{Svc: svc, Logger: logger}
}

type placeRequest struct {
	Name        string    `json:"name" binding:"required"`
	Coordinates []float64 `json:"coordinates" binding:"required,len=2"`
}

type placeView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Coordinates []float64 `json:"coordinates"`
}

func toPlaceView(p entity.Place) placeView {
	return placeView{ID: p.ID, Name: p.Name, Coordinates: []float64{p.Longitude, p.Latitude}}
}

// Create POST /api/places
func (h *PlaceHandler) Create(c *gin.Context) {
	var req placeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.CreatePlace(c.Request.Context(), application.PlaceInput{
		Name:      req.Name,
		Longitude: req.Coordinates[0],
		Latitude:  req.Coordinates[1],
	})
	if err != nil {
		h.Logger.WithError(err).Error("create place failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusCreated, toPlaceView(*p), "Place added successfully", nil)
}

// List GET /api/places
func (h *PlaceHandler) List(c *gin.Context) {
	places, err := h.Svc.ListPlaces(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list places failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusOK, toPlaceViews(places), "places", nil)
}

// Update PUT /api/places/:id
func (h *PlaceHandler) Update(c *gin.Context) {
	var req placeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.UpdatePlace(c.Request.Context(), c.Param("id"), application.PlaceInput{
		Name:      req.Name,
		Longitude: req.Coordinates[0],
		Latitude:  req.Coordinates[1],
	})
	if err != nil {
		h.writePlaceError(c, err, "update place failed")
		return
	}
	response.Success(c, http.StatusOK, toPlaceView(*p), "Place updated successfully", nil)
}

// Delete DELETE /api/places/:id
func (h *PlaceHandler) Delete(c *gin.Context) {
	if err := h.Svc.DeletePlace(c.Request.Context(), c.Param("id")); err != nil {
		h.writePlaceError(c, err, "delete place failed")
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Place deleted successfully", nil)
}

// Search GET /api/places/search?query=
func (h *PlaceHandler) Search(c *gin.Context) {
	query := c.Query("query")
	places, err := h.Svc.SearchPlaces(c.Request.Context(), query)
	if err != nil {
		h.Logger.WithError(err).Error("search places failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusOK, toPlaceViews(places), "search results", nil)
}

func toPlaceViews(places []entity.Place) []placeView {
	out := make([]placeView, 0, len(places))
	for _, p := range places {
		out = append(out, toPlaceView(p))
	}
	return out
}

func (h *PlaceHandler) writePlaceError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, application.ErrInvalidID):
		response.Error[any](c, http.StatusBadRequest, "invalid id format", nil)
	case errors.Is(err, application.ErrPlaceNotFound):
		response.Error[any](c, http.StatusNotFound, "Place not found", nil)
	default:
		h.Logger.WithError(err).Error(logMsg)
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
	}
}
