package repository

import (
	"context"

	"github.com/tripora/tripora-api/internal/domain/entity"
)

// PaymentRepository defines payment record persistence.
type PaymentRepository interface {
	Create(ctx context.Context, p *entity.Payment) error
	List(ctx context.Context) ([]entity.Payment, error)
	ListByName(ctx context.Context, name string) ([]entity.Payment, error)
}
