package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tripora/tripora-api/internal/domain/entity"
	repo "github.com/tripora/tripora-api/internal/domain/repository"
	"github.com/tripora/tripora-api/pkg/helpers"
	"github.com/tripora/tripora-api/pkg/mailer"
	tpl "github.com/tripora/tripora-api/pkg/mailer/templates"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService owns registration, login, and account glue operations.
type AuthService struct {
	Repo         repo.UserRepository
	JWT          *helpers.TokenManager
	Pub          *helpers.RabbitPublisher
	Logger       *logrus.Logger
	MailEnabled  bool
	StoreTimeout time.Duration
}

func NewAuthService(r repo.UserRepository, jwt *helpers.TokenManager, pub *helpers.RabbitPublisher, logger *logrus.Logger, mailEnabled bool, storeTimeout time.Duration) *AuthService {
	return &AuthService{Repo: r, JWT: jwt, Pub: pub, Logger: logger, MailEnabled: mailEnabled, StoreTimeout: storeTimeout}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Mobile   string
}

// Register creates a user with a freshly salted bcrypt hash. The email
// pre-check keeps the common duplicate path cheap; the users.email unique
// index is the guard against a concurrent duplicate, surfaced the same way.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	cctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()

	if existing, err := s.Repo.GetByEmail(cctx, in.Email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Mobile:       in.Mobile,
	}
	if err := s.Repo.Create(cctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.enqueueWelcome(ctx, u)
	return u, nil
}

// Login validates credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	cctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()

	u, err := s.Repo.GetByEmail(cctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.Issue(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token issue failed")
		}
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

// Profile loads the user behind an authenticated request.
func (s *AuthService) Profile(ctx context.Context, userID string) (*entity.User, error) {
	cctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()

	u, err := s.Repo.GetByID(cctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]entity.User, error) {
	cctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()
	return s.Repo.List(cctx)
}

func (s *AuthService) UpdateContact(ctx context.Context, email, name, mobile string) error {
	cctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()

	err := s.Repo.UpdateContact(cctx, email, name, mobile)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *AuthService) DeleteByEmail(ctx context.Context, email string) error {
	cctx, cancel := storeCtx(ctx, s.StoreTimeout)
	defer cancel()

	err := s.Repo.DeleteByEmail(cctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// enqueueWelcome fails open: a down broker must not break registration.
func (s *AuthService) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: tpl.Welcome,
		Data:     map[string]any{"Name": u.Name, "Email": u.Email},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Warn("welcome email enqueue failed")
	}
}
