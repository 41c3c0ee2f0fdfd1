package repository

import (
	"context"

	"github.com/tripora/tripora-api/internal/domain/entity"
)

// ReviewRepository defines review persistence.
type ReviewRepository interface {
	Create(ctx context.Context, r *entity.Review) error
	ListWithAuthors(ctx context.Context) ([]entity.ReviewWithAuthor, error)
}
