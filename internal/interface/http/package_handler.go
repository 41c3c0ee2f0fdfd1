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

// PackageHandler serves the travel package catalog.
type PackageHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewPackageHandler(svc *application.CatalogService, logger *logrus.Logger) *PackageHandler {
	return &PackageHandler{Svc: svc, Logger: logger}
}

type packageLocation struct {
	Latitude  float64 `json:"latitude" binding:"required,latitude"`
	Longitude float64 `json:"longitude" binding:"required,longitude"`
}

type packageRequest struct {
	Title    string          `json:"title" binding:"required"`
	Price    float64         `json:"price" binding:"required,gt=0"`
	Duration string          `json:"duration" binding:"required"`
	Features []string        `json:"features" binding:"required,min=1"`
	Place    string          `json:"place" binding:"required"`
	Location packageLocation `json:"location" binding:"required"`
	ImageURL string          `json:"imageUrl" binding:"required,url"`
}

type packageView struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Price    float64         `json:"price"`
	Duration string          `json:"duration"`
	Features []string        `json:"features"`
	Place    string          `json:"place"`
	Location packageLocation `json:"location"`
	ImageURL string          `json:"imageUrl"`
}

func toPackageView(p entity.TravelPackage) packageView {
	return packageView{
		ID:       p.ID,
		Title:    p.Title,
		Price:    p.Price,
		Duration: p.Duration,
		Features: p.Features,
		Place:    p.Place,
		Location: packageLocation{Latitude: p.Latitude, Longitude: p.Longitude},
		ImageURL: p.ImageURL,
	}
}

func toPackageViews(pkgs []entity.TravelPackage) []packageView {
	out := make([]packageView, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, toPackageView(p))
	}
	return out
}

type updatePackageRequest struct {
	Title    string           `json:"title"`
	Price    float64          `json:"price"`
	Duration string           `json:"duration"`
	Features []string         `json:"features"`
	Place    string           `json:"place"`
	Location *packageLocation `json:"location"`
	ImageURL string           `json:"imageUrl"`
}

// CreateBatch POST /api/packages — body must be a non-empty array.
func (h *PackageHandler) CreateBatch(c *gin.Context) {
	var reqs []packageRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		response.Error[any](c, http.StatusBadRequest, "request body must be a non-empty array of packages", validation.ToDetails(err))
		return
	}
	if len(reqs) == 0 {
		response.Error[any](c, http.StatusBadRequest, "request body must be a non-empty array of packages", nil)
		return
	}

	ins := make([]application.PackageInput, 0, len(reqs))
	for _, r := range reqs {
		ins = append(ins, application.PackageInput{
			Title:     r.Title,
			Price:     r.Price,
			Duration:  r.Duration,
			Features:  r.Features,
			Place:     r.Place,
			Latitude:  r.Location.Latitude,
			Longitude: r.Location.Longitude,
			ImageURL:  r.ImageURL,
		})
	}
	pkgs, err := h.Svc.CreatePackages(c.Request.Context(), ins)
	if err != nil {
		h.Logger.WithError(err).Error("create packages failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusCreated, toPackageViews(pkgs), "Packages added successfully", nil)
}

// ByPlace GET /api/packages?place=
func (h *PackageHandler) ByPlace(c *gin.Context) {
	place := c.Query("place")
	pkgs, err := h.Svc.PackagesByPlace(c.Request.Context(), place)
	if err != nil {
		if errors.Is(err, application.ErrNoPackagesFound) {
			response.Error[any](c, http.StatusNotFound, "No packages found for this place", nil)
			return
		}
		h.Logger.WithError(err).Error("packages by place failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusOK, toPackageViews(pkgs), "packages", nil)
}

// List GET /api/packages/all
func (h *PackageHandler) List(c *gin.Context) {
	pkgs, err := h.Svc.ListPackages(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list packages failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusOK, toPackageViews(pkgs), "packages", nil)
}

// Update PUT /api/packages/:id
func (h *PackageHandler) Update(c *gin.Context) {
	var req updatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	in := application.PackageInput{
		Title:    req.Title,
		Price:    req.Price,
		Duration: req.Duration,
		Features: req.Features,
		Place:    req.Place,
		ImageURL: req.ImageURL,
	}
	if req.Location != nil {
		in.Latitude = req.Location.Latitude
		in.Longitude = req.Location.Longitude
	}
	pkg, err := h.Svc.UpdatePackage(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidID):
			response.Error[any](c, http.StatusBadRequest, "invalid id format", nil)
		case errors.Is(err, application.ErrPackageNotFound):
			response.Error[any](c, http.StatusNotFound, "Package not found", nil)
		default:
			h.Logger.WithError(err).Error("update package failed")
			response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, toPackageView(*pkg), "Package updated successfully", nil)
}

// UploadImage POST /api/packages/:id/image (protected, multipart)
func (h *PackageHandler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "image file is required", nil)
		return
	}
	defer func() { _ = file.Close() }()

	url, err := h.Svc.UploadPackageImage(c.Request.Context(), c.Param("id"), file,
		header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidID):
			response.Error[any](c, http.StatusBadRequest, "invalid id format", nil)
		case errors.Is(err, application.ErrPackageNotFound):
			response.Error[any](c, http.StatusNotFound, "Package not found", nil)
		case errors.Is(err, application.ErrImageUnavailable):
			response.Error[any](c, http.StatusServiceUnavailable, "image storage not configured", nil)
		default:
			h.Logger.WithError(err).Error("upload package image failed")
			response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"image_url": url}, "image uploaded", nil)
}
