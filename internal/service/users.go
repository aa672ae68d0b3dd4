package service

import (
	"context"
	"errors"
	"strings"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/lib/job"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type userStore interface {
	GetUserWithEmail(ctx context.Context, email string) (*model.User, error)
	GetUserWithID(ctx context.Context, id int) (*model.User, error)
	AddUser(ctx context.Context, in model.NewUser) (*model.User, error)
}

type UserService struct {
	users    userStore
	jobs     TaskEnqueuer
	logger   *zerolog.Logger
	hashCost int
}

func NewUserService(users userStore, jobs TaskEnqueuer, logger *zerolog.Logger) *UserService {
	return &UserService{
		users:    users,
		jobs:     jobs,
		logger:   logger,
		hashCost: bcrypt.DefaultCost,
	}
}

type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (r *RegisterUserRequest) Validate() error {
	return validation.Struct(r)
}

var errInvalidCredentials = errs.NewUnauthorizedError("Invalid email or password", true)

// Register creates an account with a bcrypt-hashed password and queues the
// welcome email. Name and email are trimmed (and the email lowercased)
// before validation. A failure to queue the email is logged; the account
// stays.
func (s *UserService) Register(ctx context.Context, req *RegisterUserRequest) (*model.User, error) {
	in := *req
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)

	if err := validation.Check(&in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.AddUser(ctx, model.NewUser{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
	})
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	s.enqueueWelcome(ctx, user)

	return user, nil
}

func (s *UserService) enqueueWelcome(ctx context.Context, user *model.User) {
	task, err := job.NewWelcomeEmailTask(user.Email, user.Name)
	if err == nil {
		_, err = s.jobs.EnqueueContext(ctx, task)
	}
	if err != nil {
		s.logger.Warn().
			Err(err).
			Int("user_id", user.ID).
			Msg("failed to enqueue welcome email")
	}
}

// Authenticate returns the user whose email and password match. Unknown
// emails and wrong passwords produce the same 401.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.GetUserWithEmail(ctx, normalizeEmail(email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}
	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.users.GetUserWithEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int) (*model.User, error) {
	user, err := s.users.GetUserWithID(ctx, id)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
