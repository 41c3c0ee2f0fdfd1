package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripora/tripora-api/internal/domain/entity"
	"github.com/tripora/tripora-api/internal/domain/repository"
)

type PackageRepository struct {
	pool *pgxpool.Pool
}

func NewPackageRepository(pool *pgxpool.Pool) *PackageRepository {
	return &PackageRepository{pool: pool}
}

// CreateBatch inserts all packages in one transaction so a partial batch
// never becomes visible.
func (r *PackageRepository) CreateBatch(ctx context.Context, pkgs []*entity.TravelPackage) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, p := range pkgs {
		row := tx.QueryRow(ctx, `
			INSERT INTO packages (title, price, duration, features, place, latitude, longitude, image_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, created_at, updated_at
		`, p.Title, p.Price, p.Duration, p.Features, p.Place, p.Latitude, p.Longitude, p.ImageURL)
		if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PackageRepository) GetByID(ctx context.Context, id string) (*entity.TravelPackage, error) {
	p := &entity.TravelPackage{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, price, duration, features, place, latitude, longitude, image_url, created_at, updated_at
		FROM packages
		WHERE id = $1
	`, id)
	if err := scanPackage(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PackageRepository) List(ctx context.Context) ([]entity.TravelPackage, error) {
	return r.queryMany(ctx, `
		SELECT id, title, price, duration, features, place, latitude, longitude, image_url, created_at, updated_at
		FROM packages
		ORDER BY created_at
	`)
}

func (r *PackageRepository) ListByPlace(ctx context.Context, place string) ([]entity.TravelPackage, error) {
	return r.queryMany(ctx, `
		SELECT id, title, price, duration, features, place, latitude, longitude, image_url, created_at, updated_at
		FROM packages
		WHERE lower(place) = lower($1)
		ORDER BY created_at
	`, place)
}

func (r *PackageRepository) Update(ctx context.Context, p *entity.TravelPackage) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE packages
		SET title = $1, price = $2, duration = $3, features = $4, place = $5,
		    latitude = $6, longitude = $7, image_url = $8, updated_at = now()
		WHERE id = $9
		RETURNING created_at, updated_at
	`, p.Title, p.Price, p.Duration, p.Features, p.Place, p.Latitude, p.Longitude, p.ImageURL, p.ID)
	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *PackageRepository) SetImageURL(ctx context.Context, id, url string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE packages SET image_url = $1, updated_at = now() WHERE id = $2
	`, url, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanPackage(row pgx.Row, p *entity.TravelPackage) error {
	return row.Scan(&p.ID, &p.Title, &p.Price, &p.Duration, &p.Features, &p.Place,
		&p.Latitude, &p.Longitude, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PackageRepository) queryMany(ctx context.Context, query string, args ...any) ([]entity.TravelPackage, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pkgs []entity.TravelPackage
	for rows.Next() {
		var p entity.TravelPackage
		if err := scanPackage(rows, &p); err != nil {
			return nil, err
		}
		pkgs = append(pkgs, p)
	}
	return pkgs, rows.Err()
}

var _ repository.PackageRepository = (*PackageRepository)(nil)
