package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripora/tripora-api/internal/domain/entity"
	"github.com/tripora/tripora-api/internal/domain/repository"
)

type PlaceRepository struct {
	pool *pgxpool.Pool
}

func NewPlaceRepository(pool *pgxpool.Pool) *PlaceRepository {
	return &PlaceRepository{pool: pool}
}

func (r *PlaceRepository) Create(ctx context.Context, p *entity.Place) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO places (name, longitude, latitude)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, p.Name, p.Longitude, p.Latitude)
	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*entity.Place, error) {
	p := &entity.Place{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, longitude, latitude, created_at, updated_at
		FROM places
		WHERE id = $1
	`, id)
	if err := row.Scan(&p.ID, &p.Name, &p.Longitude, &p.Latitude, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PlaceRepository) List(ctx context.Context) ([]entity.Place, error) {
	return r.queryMany(ctx, `
		SELECT id, name, longitude, latitude, created_at, updated_at
		FROM places
		ORDER BY created_at
	`)
}

func (r *PlaceRepository) Update(ctx context.Context, p *entity.Place) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE places
		SET name = $1, longitude = $2, latitude = $3, updated_at = now()
		WHERE id = $4
		RETURNING created_at, updated_at
	`, p.Name, p.Longitude, p.Latitude, p.ID)
	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *PlaceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM places WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PlaceRepository) SearchByName(ctx context.Context, query string) ([]entity.Place, error) {
	return r.queryMany(ctx, `
		SELECT id, name, longitude, latitude, created_at, updated_at
		FROM places
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name
	`, query)
}

func (r *PlaceRepository) queryMany(ctx context.Context, query string, args ...any) ([]entity.Place, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var places []entity.Place
	for rows.Next() {
		var p entity.Place
		if err := rows.Scan(&p.ID, &p.Name, &p.Longitude, &p.Latitude, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	return places, rows.Err()
}

var _ repository.PlaceRepository = (*PlaceRepository)(nil)
