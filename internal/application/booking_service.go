package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tripora/tripora-api/internal/domain/entity"
	repo "github.com/tripora/tripora-api/internal/domain/repository"
	"github.com/tripora/tripora-api/pkg/helpers"
	"github.com/tripora/tripora-api/pkg/mailer"
	tpl "github.com/tripora/tripora-api/pkg/mailer/templates"
)

// BookingService records payments and reconstructs bookings by joining
// payments with the package catalog.
type BookingService struct {
	Payments     repo.PaymentRepository
	Packages     repo.PackageRepository
	Pub          *helpers.RabbitPublisher
	Logger       *logrus.Logger
	MailEnabled  bool
	StoreTimeout time.Duration
}

type PaymentInput struct {
	Name         string
	Mobile       string
	Email        string
	PackageTitle string
	PaymentRef   string
	Amount       float64
}

func (s *BookingService) RecordPayment(ctx context.Context, in PaymentInput) (*entity.Payment, error) {
	cctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()

	p := &entity.Payment{
		Name:         in.Name,
		Mobile:       in.Mobile,
		Email:        in.Email,
		PackageTitle: in.PackageTitle,
		PaymentRef:   in.PaymentRef,
		Amount:       in.Amount,
	}
	if err := s.Payments.Create(cctx, p); err != nil {
		return nil, err
	}

	s.enqueueConfirmation(ctx, p)
	return p, nil
}

func (s *BookingService) ListPayments(ctx context.Context) ([]entity.Payment, error) {
	cctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()
	return s.Payments.List(cctx)
}

// BookingsFor joins a customer's payments with the package catalog in
// memory, keyed by package title. Payments whose package no longer exists
// are skipped rather than reported.
func (s *BookingService) BookingsFor(ctx context.Context, name string) ([]entity.Booking, error) {
	cctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()

	payments, err := s.Payments.ListByName(cctx, name)
	if err != nil {
		return nil, err
	}
	pkgs, err := s.Packages.List(cctx)
	if err != nil {
		return nil, err
	}

	byTitle := make(map[string]entity.TravelPackage, len(pkgs))
	for _, p := range pkgs {
		byTitle[p.Title] = p
	}

	bookings := make([]entity.Booking, 0, len(payments))
	for _, pay := range payments {
		pkg, ok := byTitle[pay.PackageTitle]
		if !ok {
			continue
		}
		bookings = append(bookings, entity.Booking{Customer: pay, Package: pkg})
	}
	return bookings, nil
}

// enqueueConfirmation fails open: the payment is already recorded.
func (s *BookingService) enqueueConfirmation(ctx context.Context, p *entity.Payment) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       p.Email,
		Template: tpl.BookingConfirmation,
		Data: map[string]any{
			"Name":         p.Name,
			"PackageTitle": p.PackageTitle,
			"PaymentRef":   p.PaymentRef,
			"Amount":       p.Amount,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("payment_ref", p.PaymentRef).Warn("booking email enqueue failed")
	}
}
