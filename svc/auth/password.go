package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/signaturecraft/pkg/logger"
	"github.com/dmitrymomot/signaturecraft/pkg/sanitizer"
	"github.com/dmitrymomot/signaturecraft/pkg/validator"
)

// PasswordService registers and authenticates email/password accounts.
type PasswordService struct {
	storage  Storage
	cost     int
	strength validator.PasswordStrength
	log      *slog.Logger
	now      func() time.Time

	// compared against when the email is unknown so both paths cost one bcrypt run
	dummyHash []byte
}

// PasswordOption configures a PasswordService.
type PasswordOption func(*PasswordService)

// WithBcryptCost overrides bcrypt.DefaultCost.
func WithBcryptCost(cost int) PasswordOption {
	return func(s *PasswordService) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.cost = cost
		}
	}
}

// WithPasswordStrength overrides validator.DefaultPasswordStrength.
func WithPasswordStrength(cfg validator.PasswordStrength) PasswordOption {
	return func(s *PasswordService) {
		s.strength = cfg
	}
}

// WithPasswordLogger sets the logger.
func WithPasswordLogger(log *slog.Logger) PasswordOption {
	return func(s *PasswordService) {
		if log != nil {
			s.log = log
		}
	}
}

// NewPasswordService creates a PasswordService backed by storage.
func NewPasswordService(storage Storage, opts ...PasswordOption) *PasswordService {
	s := &PasswordService{
		storage:  storage,
		cost:     bcrypt.DefaultCost,
		strength: validator.DefaultPasswordStrength(),
		log:      slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.dummyHash = newDummyHash(s.cost, s.log)
	return s
}

const dummyPassword = "signaturecraft-dummy-password"

// newDummyHash hashes dummyPassword at cost, falling back to
// bcrypt.DefaultCost when that fails.
func newDummyHash(cost int, log *slog.Logger) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)
	if err == nil {
		return hash
	}
	log.Warn("dummy password hash failed, using default cost",
		logger.Component("auth"),
		slog.Int("cost", cost),
		logger.Error(err),
	)
	hash, err = bcrypt.GenerateFromPassword([]byte(dummyPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error("dummy password hash failed", logger.Component("auth"), logger.Error(err))
	}
	return hash
}

// Register creates a user with a password. The email is normalized and must
// not be taken.
func (s *PasswordService) Register(ctx context.Context, name, email, password string) (*User, error) {
	email = sanitizer.NormalizeEmail(email)
	name = sanitizer.SingleLine(name)

	rules := []validator.Rule{
		validator.RequiredString("email", email),
		validator.ValidEmail("email", email),
		validator.MaxLenString("name", name, 120),
	}
	rules = append(rules, validator.StrongPassword("password", password, s.strength)...)
	if err := validator.Apply(rules...); err != nil {
		return nil, err
	}

	if _, err := s.storage.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		CreatedAt: s.now().UTC(),
	}
	if err := s.storage.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if err := s.storage.StorePasswordHash(ctx, user.ID, hash); err != nil {
		if derr := s.storage.DeleteUser(ctx, user.ID); derr != nil {
			s.log.ErrorContext(ctx, "failed to clean up user after password store error",
				logger.Component("auth"),
				logger.UserID(user.ID),
				logger.Errors(err, derr),
			)
		}
		return nil, fmt.Errorf("store password: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		logger.Component("auth"),
		logger.UserID(user.ID),
		logger.Event("register"),
	)
	return user, nil
}

// Authenticate checks the credentials. Unknown emails, accounts without a
// password and wrong passwords all return ErrInvalidCredentials.
func (s *PasswordService) Authenticate(ctx context.Context, email, password string) (*User, error) {
	email = sanitizer.NormalizeEmail(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := s.storage.GetPasswordHash(ctx, user.ID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrNoPassword) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup password: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		s.log.WarnContext(ctx, "failed login",
			logger.Component("auth"),
			logger.UserID(user.ID),
			logger.Event("login_failed"),
		)
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
