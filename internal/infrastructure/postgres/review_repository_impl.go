package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripora/tripora-api/internal/domain/entity"
	"github.com/tripora/tripora-api/internal/domain/repository"
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *entity.Review) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO reviews (user_id, place_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, rev.UserID, rev.PlaceID, rev.Rating, rev.Comment)
	return row.Scan(&rev.ID, &rev.CreatedAt)
}

func (r *ReviewRepository) ListWithAuthors(ctx context.Context) ([]entity.ReviewWithAuthor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.id, r.user_id, r.place_id, r.rating, r.comment, r.created_at, u.name
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		ORDER BY r.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []entity.ReviewWithAuthor
	for rows.Next() {
		var rev entity.ReviewWithAuthor
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.PlaceID, &rev.Rating, &rev.Comment,
			&rev.CreatedAt, &rev.AuthorName); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

var _ repository.ReviewRepository = (*ReviewRepository)(nil)
