package handlers

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tripora/tripora-api/internal/domain/entity"
	repo "github.com/tripora/tripora-api/internal/domain/repository"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(nopWriter{})
	return l
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

// memUserRepo is an in-memory UserRepository keyed by email.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return repo.ErrDuplicate
	}
	u.ID = uuid.NewString()
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *memUserRepo) UpdateContact(_ context.Context, email, name, mobile string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[email]
	if !ok {
		return repo.ErrNotFound
	}
	u.Name = name
	u.Mobile = mobile
	return nil
}

func (r *memUserRepo) DeleteByEmail(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[email]; !ok {
		return repo.ErrNotFound
	}
	delete(r.users, email)
	return nil
}

// memPlaceRepo is an in-memory PlaceRepository.
type memPlaceRepo struct {
	mu     sync.Mutex
	places []entity.Place
}

func (r *memPlaceRepo) Create(_ context.Context, p *entity.Place) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = uuid.NewString()
	r.places = append(r.places, *p)
	return nil
}

func (r *memPlaceRepo) GetByID(_ context.Context, id string) (*entity.Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.places {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memPlaceRepo) List(_ context.Context) ([]entity.Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.Place(nil), r.places...), nil
}

func (r *memPlaceRepo) Update(_ context.Context, in *entity.Place) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.places {
		if p.ID == in.ID {
			r.places[i] = *in
			return nil
		}
	}
	return repo.ErrNotFound
}

func (r *memPlaceRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.places {
		if p.ID == id {
			r.places = append(r.places[:i], r.places[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (r *memPlaceRepo) SearchByName(_ context.Context, query string) ([]entity.Place, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Place
	for _, p := range r.places {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)) {
			out = append(out, p)
		}
	}
	return out, nil
}

// memPackageRepo is an in-memory PackageRepository.
type memPackageRepo struct {
	mu   sync.Mutex
	pkgs []entity.TravelPackage
}

func (r *memPackageRepo) CreateBatch(_ context.Context, pkgs []*entity.TravelPackage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range pkgs {
		p.ID = uuid.NewString()
		r.pkgs = append(r.pkgs, *p)
	}
	return nil
}

func (r *memPackageRepo) GetByID(_ context.Context, id string) (*entity.TravelPackage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.pkgs {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memPackageRepo) List(_ context.Context) ([]entity.TravelPackage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.TravelPackage(nil), r.pkgs...), nil
}

func (r *memPackageRepo) ListByPlace(_ context.Context, place string) ([]entity.TravelPackage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.TravelPackage
	for _, p := range r.pkgs {
		if strings.EqualFold(p.Place, place) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPackageRepo) Update(_ context.Context, in *entity.TravelPackage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.pkgs {
		if p.ID == in.ID {
			r.pkgs[i] = *in
			return nil
		}
	}
	return repo.ErrNotFound
}

func (r *memPackageRepo) SetImageURL(_ context.Context, id, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.pkgs {
		if r.pkgs[i].ID == id {
			r.pkgs[i].ImageURL = url
			return nil
		}
	}
	return repo.ErrNotFound
}

// memPaymentRepo is an in-memory PaymentRepository.
type memPaymentRepo struct {
	mu       sync.Mutex
	payments []entity.Payment
}

func (r *memPaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = uuid.NewString()
	r.payments = append(r.payments, *p)
	return nil
}

func (r *memPaymentRepo) List(_ context.Context) ([]entity.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.Payment(nil), r.payments...), nil
}

func (r *memPaymentRepo) ListByName(_ context.Context, name string) ([]entity.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Payment
	for _, p := range r.payments {
		if p.Name == name {
			out = append(out, p)
		}
	}
	return out, nil
}

// memReviewRepo is an in-memory ReviewRepository; author names come from
// the paired user repo when present.
type memReviewRepo struct {
	mu      sync.Mutex
	users   *memUserRepo
	reviews []entity.Review
}

func (r *memReviewRepo) Create(_ context.Context, rev *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rev.ID = uuid.NewString()
	r.reviews = append(r.reviews, *rev)
	return nil
}

func (r *memReviewRepo) ListWithAuthors(ctx context.Context) ([]entity.ReviewWithAuthor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.ReviewWithAuthor, 0, len(r.reviews))
	for _, rev := range r.reviews {
		name := ""
		if r.users != nil {
			if u, err := r.users.GetByID(ctx, rev.UserID); err == nil {
				name = u.Name
			}
		}
		out = append(out, entity.ReviewWithAuthor{Review: rev, AuthorName: name})
	}
	return out, nil
}
