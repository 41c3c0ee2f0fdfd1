package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripora/tripora-api/internal/application"
	"github.com/tripora/tripora-api/internal/domain/entity"
)

func newPlaceRouter(places *memPlaceRepo) *gin.Engine {
	svc := &application.CatalogService{
		Places:       places,
		Logger:       testLogger(),
		StoreTimeout: time.Second,
	}
	h := NewPlaceHandler(svc, testLogger())

	r := gin.New()
	api := r.Group("/api")
	api.POST("/places", h.Create)
	api.GET("/places", h.List)
	api.GET("/places/search", h.Search)
	api.PUT("/places/:id", h.Update)
	api.DELETE("/places/:id", h.Delete)
	return r
}

func TestPlaces_CreateAndList(t *testing.T) {
	places := &memPlaceRepo{}
	r := newPlaceRouter(places)

	// Coordinates arrive as [longitude, latitude].
	w := doJSON(t, r, http.MethodPost, "/api/places",
		`{"name":"Bali","coordinates":[115.1889,-8.4095]}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Place added successfully", decodeEnvelope(t, w).Message)

	require.Len(t, places.places, 1)
	assert.Equal(t, 115.1889, places.places[0].Longitude)
	assert.Equal(t, -8.4095, places.places[0].Latitude)

	w = doJSON(t, r, http.MethodGet, "/api/places", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []struct {
			Name        string    `json:"name"`
			Coordinates []float64 `json:"coordinates"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Bali", resp.Data[0].Name)
	assert.Equal(t, []float64{115.1889, -8.4095}, resp.Data[0].Coordinates)
}

func TestPlaces_CreateRejectsBadCoordinates(t *testing.T) {
	r := newPlaceRouter(&memPlaceRepo{})

	for _, body := range []string{
		`{"name":"Bali"}`,
		`{"name":"Bali","coordinates":[115.1889]}`,
		`{"name":"Bali","coordinates":[1,2,3]}`,
	} {
		w := doJSON(t, r, http.MethodPost, "/api/places", body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestPlaces_Search(t *testing.T) {
	places := &memPlaceRepo{}
	ctx := context.Background()
	for _, name := range []string{"Bali", "Balikpapan", "Kyoto"} {
		require.NoError(t, places.Create(ctx, &entity.Place{Name: name}))
	}
	r := newPlaceRouter(places)

	w := doJSON(t, r, http.MethodGet, "/api/places/search?query=bali", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Bali")
	assert.Contains(t, body, "Balikpapan")
	assert.NotContains(t, body, "Kyoto")
}

func TestPlaces_UpdateAndDelete(t *testing.T) {
	places := &memPlaceRepo{}
	require.NoError(t, places.Create(context.Background(), &entity.Place{Name: "Bali", Longitude: 1, Latitude: 2}))
	id := places.places[0].ID
	r := newPlaceRouter(places)

	w := doJSON(t, r, http.MethodPut, "/api/places/"+id,
		`{"name":"Bali Island","coordinates":[115.2,-8.4]}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bali Island", places.places[0].Name)

	w = doJSON(t, r, http.MethodPut, "/api/places/bogus",
		`{"name":"X","coordinates":[1,2]}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/places/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, places.places)

	w = doJSON(t, r, http.MethodDelete, "/api/places/"+id, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
