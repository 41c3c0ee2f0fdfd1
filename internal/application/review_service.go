package application

import (
	"context"
	"errors"
	"time"

	"github.com/tripora/tripora-api/internal/domain/entity"
	repo "github.com/tripora/tripora-api/internal/domain/repository"
)

var ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")

// ReviewService owns place reviews.
type ReviewService struct {
	Reviews      repo.ReviewRepository
	StoreTimeout time.Duration
}

type ReviewInput struct {
	UserID  string
	PlaceID string
	Rating  int
	Comment string
}

func (s *ReviewService) AddReview(ctx context.Context, in ReviewInput) (*entity.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrRatingOutOfRange
	}
	cctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()

	r := &entity.Review{
		UserID:  in.UserID,
		PlaceID: in.PlaceID,
		Rating:  in.Rating,
		Comment: in.Comment,
	}
	if err := s.Reviews.Create(cctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *ReviewService) ListReviews(ctx context.Context) ([]entity.ReviewWithAuthor, error) {
	cctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()
	return s.Reviews.ListWithAuthors(cctx)
}
