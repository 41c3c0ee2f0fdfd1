package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripora/tripora-api/internal/domain/entity"
	"github.com/tripora/tripora-api/internal/domain/repository"
)

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

func (r *PaymentRepository) Create(ctx context.Context, p *entity.Payment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO payments (name, mobile, email, package_title, payment_ref, amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, p.Name, p.Mobile, p.Email, p.PackageTitle, p.PaymentRef, p.Amount)
	return row.Scan(&p.ID, &p.CreatedAt)
}

func (r *PaymentRepository) List(ctx context.Context) ([]entity.Payment, error) {
	return r.queryMany(ctx, `
		SELECT id, name, mobile, email, package_title, payment_ref, amount, created_at
		FROM payments
		ORDER BY created_at DESC
	`)
}

func (r *PaymentRepository) ListByName(ctx context.Context, name string) ([]entity.Payment, error) {
	return r.queryMany(ctx, `
		SELECT id, name, mobile, email, package_title, payment_ref, amount, created_at
		FROM payments
		WHERE name = $1
		ORDER BY created_at DESC
	`, name)
}

func (r *PaymentRepository) queryMany(ctx context.Context, query string, args ...any) ([]entity.Payment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.Name, &p.Mobile, &p.Email, &p.PackageTitle,
			&p.PaymentRef, &p.Amount, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

var _ repository.PaymentRepository = (*PaymentRepository)(nil)
