package repository

import (
	"context"

	"github.com/tripora/tripora-api/internal/domain/entity"
)

// PlaceRepository defines place persistence and name search.
type PlaceRepository interface {
	Create(ctx context.Context, p *entity.Place) error
	GetByID(ctx context.Context, id string) (*entity.Place, error)
	List(ctx context.Context) ([]entity.Place, error)
	Update(ctx context.Context, p *entity.Place) error
	Delete(ctx context.Context, id string) error
	// SearchByName matches case-insensitively on a substring of the name.
	SearchByName(ctx context.Context, query string) ([]entity.Place, error)
}
