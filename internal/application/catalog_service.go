package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tripora/tripora-api/internal/domain/entity"
	repo "github.com/tripora/tripora-api/internal/domain/repository"
	"github.com/tripora/tripora-api/pkg/helpers"
)

var (
	ErrPlaceNotFound    = errors.New("place not found")
	ErrPackageNotFound  = errors.New("package not found")
	ErrNoPackagesFound  = errors.New("no packages found for this place")
	ErrInvalidID        = errors.New("invalid id format")
	ErrImageUnavailable = errors.New("image storage not configured")
)

// CatalogService owns the place and travel package catalogs: CRUD,
// search (Elasticsearch with a repository fallback), and image uploads.
type CatalogService struct {
	Places        repo.PlaceRepository
	Packages      repo.PackageRepository
	ES            *elasticsearch.Client
	ESPlacesIndex string
	GCS           *storage.Client
	GCSBucket     string
	Logger        *logrus.Logger
	StoreTimeout  time.Duration
}

type PlaceInput struct {
	Name      string
	Longitude float64
	Latitude  float64
}

func (s *CatalogService) CreatePlace(ctx context.Context, in PlaceInput) (*entity.Place, error) {
	cctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()

	p := &entity.Place{Name: in.Name, Longitude: in.Longitude, Latitude: in.Latitude}
	if err := s.Places.Create(cctx, p); err != nil {
		return nil, err
	}
	s.indexPlace(ctx, p)
	return p, nil
}

func (s *CatalogService) ListPlaces(ctx context.Context) ([]entity.Place, error) {
	cctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()
	return s.Places.List(cctx)
}

func (s *CatalogService) UpdatePlace(ctx context.Context, id string, in PlaceInput) (*entity.Place, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	cctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()

	p := &entity.Place{ID: id, Name: in.Name, Longitude: in.Longitude, Latitude: in.Latitude}
	if err := s.Places.Update(cctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, err
	}
	s.indexPlace(ctx, p)
	return p, nil
}

func (s *CatalogService) DeletePlace(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	cctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()

	err := s.Places.Delete(cctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrPlaceNotFound
	}
	return err
}

// SearchPlaces prefers Elasticsearch when configured and falls back to the
// repository's case-insensitive substring match otherwise.
func (s *CatalogService) SearchPlaces(ctx context.Context, query string) ([]entity.Place, error) {
	if s.ES != nil && s.ESPlacesIndex != "" {
		if places, err := s.searchES(ctx, query); err == nil {
			return places, nil
		} else if s.Logger != nil {
			s.Logger.WithError(err).Warn("es search failed, falling back to store")
		}
	}
	cctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()
	return s.Places.SearchByName(cctx, query)
}

type PackageInput struct {
	Title     string
	Price     float64
	Duration  string
	Features  []string
	Place     string
	Latitude  float64
	Longitude float64
	ImageURL  string
}

func (s *CatalogService) CreatePackages(ctx context.Context, ins []PackageInput) ([]entity.TravelPackage, error) {
	cctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()

	pkgs := make([]*entity.TravelPackage, 0, len(ins))
	for _, in := range ins {
		pkgs = append(pkgs, &entity.TravelPackage{
			Title:     in.Title,
			Price:     in.Price,
			Duration:  in.Duration,
			Features:  in.Features,
			Place:     in.Place,
			Latitude:  in.Latitude,
			Longitude: in.Longitude,
			ImageURL:  in.ImageURL,
		})
	}
	if err := s.Packages.CreateBatch(cctx, pkgs); err != nil {
		return nil, err
	}
	out := make([]entity.TravelPackage, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, *p)
	}
	return out, nil
}

func (s *CatalogService) PackagesByPlace(ctx context.Context, place string) ([]entity.TravelPackage, error) {
	cctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()

	pkgs, err := s.Packages.ListByPlace(cctx, place)
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, ErrNoPackagesFound
	}
	return pkgs, nil
}

func (s *CatalogService) ListPackages(ctx context.Context) ([]entity.TravelPackage, error) {
	cctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()
	return s.Packages.List(cctx)
}

// UpdatePackage merges the non-zero fields of in onto the stored package.
func (s *CatalogService) UpdatePackage(ctx context.Context, id string, in PackageInput) (*entity.TravelPackage, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	cctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()

	p, err := s.Packages.GetByID(cctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	if in.Title != "" {
		p.Title = in.Title
	}
	if in.Price != 0 {
		p.Price = in.Price
	}
	if in.Duration != "" {
		p.Duration = in.Duration
	}
	if len(in.Features) > 0 {
		p.Features = in.Features
	}
	if in.Place != "" {
		p.Place = in.Place
	}
	if in.Latitude != 0 {
		p.Latitude = in.Latitude
	}
	if in.Longitude != 0 {
		p.Longitude = in.Longitude
	}
	if in.ImageURL != "" {
		p.ImageURL = in.ImageURL
	}
	if err := s.Packages.Update(cctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return p, nil
}

// UploadPackageImage stores the image in GCS and records its public URL.
func (s *CatalogService) UploadPackageImage(ctx context.Context, id string, r io.Reader, filename, contentType string) (string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return "", ErrInvalidID
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", ErrImageUnavailable
	}
	cctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()

	if _, err := s.Packages.GetByID(cctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrPackageNotFound
		}
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("packages", id, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	if err := s.Packages.SetImageURL(cctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *CatalogService) indexPlace(ctx context.Context, p *entity.Place) {
	if s.ES == nil || s.ESPlacesIndex == "" {
		return
	}
	doc := map[string]any{
		"id":        p.ID,
		"name":      p.Name,
		"longitude": p.Longitude,
		"latitude":  p.Latitude,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESPlacesIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("place_id", p.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("place_id", p.ID).Warn("es index response error")
	}
}

func (s *CatalogService) searchES(ctx context.Context, q string) ([]entity.Place, error) {
	query := map[string]any{
		"query": map[string]any{
			"match": map[string]any{
				"name": map[string]any{"query": q, "fuzziness": "AUTO"},
			},
		},
		"size": 25,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESPlacesIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, errors.New("es search: " + res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source struct {
					ID        string  `json:"id"`
					Name      string  `json:"name"`
					Longitude float64 `json:"longitude"`
					Latitude  float64 `json:"latitude"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]entity.Place, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, entity.Place{
			ID:        h.Source.ID,
			Name:      h.Source.Name,
			Longitude: h.Source.Longitude,
			Latitude:  h.Source.Latitude,
		})
	}
	return out, nil
}
