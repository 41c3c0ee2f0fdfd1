package repository

import (
	"context"

	"github.com/tripora/tripora-api/internal/domain/entity"
)

// PackageRepository defines travel package persistence.
type PackageRepository interface {
	CreateBatch(ctx context.Context, pkgs []*entity.TravelPackage) error
	GetByID(ctx context.Context, id string) (*entity.TravelPackage, error)
	List(ctx context.Context) ([]entity.TravelPackage, error)
	// ListByPlace matches the place name case-insensitively but exactly.
	ListByPlace(ctx context.Context, place string) ([]entity.TravelPackage, error)
	Update(ctx context.Context, p *entity.TravelPackage) error
	SetImageURL(ctx context.Context, id, url string) error
}
