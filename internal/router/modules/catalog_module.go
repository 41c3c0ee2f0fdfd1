package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/tripora/tripora-api/internal/interface/http"
	"github.com/tripora/tripora-api/internal/interface/middleware"
	"github.com/tripora/tripora-api/pkg/helpers"
)

// CatalogModule wires the place and package catalog routes.
// Reads are public to serve the storefront; the image upload mutates
// through GCS and requires auth.
type CatalogModule struct {
	Places   *handlers.PlaceHandler
	Packages *handlers.PackageHandler
	Tokens   *helpers.TokenManager
}

func NewCatalogModule(places *handlers.PlaceHandler, packages *handlers.PackageHandler, tokens *helpers.TokenManager) *CatalogModule {
	return &CatalogModule{Places: places, Packages: packages, Tokens: tokens}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	rg.POST("/places", m.Places.Create)
	rg.GET("/places", m.Places.List)
	rg.GET("/places/search", m.Places.Search)
	rg.PUT("/places/:id", m.Places.Update)
	rg.DELETE("/places/:id", m.Places.Delete)

	rg.POST("/packages", m.Packages.CreateBatch)
	rg.GET("/packages", m.Packages.ByPlace)
	rg.GET("/packages/all", m.Packages.List)
	rg.PUT("/packages/:id", m.Packages.Update)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Tokens))
	{
		auth.POST("/packages/:id/image", m.Packages.UploadImage)
	}
}
