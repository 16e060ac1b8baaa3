package account

//go:generate mockgen -source=account.go -destination=mocks/mock_account.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MyelinBots/ecochat-go/internal/apperr"
	"github.com/MyelinBots/ecochat-go/internal/db"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories/user"
	"github.com/MyelinBots/ecochat-go/internal/db/repositories/user_stats"
	"github.com/MyelinBots/ecochat-go/internal/metrics"
)

const MinPasswordLength = 6

type Service interface {
	// Register creates the user and its zeroed stats row together.
	Register(ctx context.Context, email, password, name string) (*user.User, error)
	Authenticate(ctx context.Context, email, password string) (*user.User, error)
	GetUser(ctx context.Context, userID uint) (*user.User, error)
	UpdateProfile(ctx context.Context, userID uint, name, email string) (*user.User, error)
	ChangePassword(ctx context.Context, userID uint, current, next string) error

	// EnsureDefaultUser registers the demo account unless the email is taken.
	// created reports whether a new row was written.
	EnsureDefaultUser(ctx context.Context, email, password, name string) (u *user.User, created bool, err error)
	CountUsers(ctx context.Context) (int64, error)
}

type Impl struct {
	db    *db.DB
	users user.UserRepository
	cost  int
}

func New(database *db.DB, bcryptCost int) Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Impl{
		db:    database,
		users: user.NewUserRepository(database),
		cost:  bcryptCost,
	}
}

func (s *Impl) Register(ctx context.Context, email, password, name string) (*user.User, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if name == "" {
		name = defaultName(email)
	}

	existing, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.KindConflict, "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{Email: email, Name: name, PasswordHash: string(hash)}
	err = s.db.Transaction(ctx, func(tx *db.DB) error {
		if err := user.NewUserRepository(tx).CreateUser(ctx, u); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Wrap(apperr.KindConflict, "email already registered", err)
			}
			return fmt.Errorf("create user: %w", err)
		}
		if _, err := user_stats.NewUserStatsRepository(tx).EnsureStats(ctx, u.ID); err != nil {
			return fmt.Errorf("create stats: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncRegistration()
	slog.Info("user registered", slog.Uint64("user_id", uint64(u.ID)))
	return u, nil
}

func (s *Impl) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	u, err := s.users.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, apperr.New(apperr.KindUnauthorized, "invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.New(apperr.KindUnauthorized, "invalid email or password")
	}
	return u, nil
}

func (s *Impl) GetUser(ctx context.Context, userID uint) (*user.User, error) {
	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, apperr.New(apperr.KindNotFound, "user not found")
	}
	return u, nil
}

func (s *Impl) UpdateProfile(ctx context.Context, userID uint, name, email string) (*user.User, error) {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		name = u.Name
	}
	if email == "" {
		email = u.Email
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	if email != u.Email {
		other, err := s.users.GetUserByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("get user: %w", err)
		}
		if other != nil {
			return nil, apperr.New(apperr.KindConflict, "email already registered")
		}
	}

	if err := s.users.UpdateProfile(ctx, userID, name, email); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Wrap(apperr.KindConflict, "email already registered", err)
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}

	u.Name = name
	u.Email = email
	return u, nil
}

func (s *Impl) ChangePassword(ctx context.Context, userID uint, current, next string) error {
	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)); err != nil {
		return apperr.New(apperr.KindUnauthorized, "current password is incorrect")
	}
	if err := validatePassword(next); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	slog.Info("password changed", slog.Uint64("user_id", uint64(userID)))
	return nil
}

func (s *Impl) EnsureDefaultUser(ctx context.Context, email, password, name string) (*user.User, bool, error) {
	existing, err := s.users.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, false, fmt.Errorf("get user: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	u, err := s.Register(ctx, email, password, name)
	if err != nil {
		// registered concurrently by another process
		if apperr.IsKind(err, apperr.KindConflict) {
			u, gerr := s.users.GetUserByEmail(ctx, strings.TrimSpace(email))
			if gerr != nil {
				return nil, false, fmt.Errorf("get user: %w", gerr)
			}
			return u, false, nil
		}
		return nil, false, err
	}
	return u, true, nil
}

func (s *Impl) CountUsers(ctx context.Context) (int64, error) {
	n, err := s.users.CountUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func validateEmail(email string) error {
	at := strings.IndexByte(email, '@')
	if email == "" || at <= 0 || at == len(email)-1 {
		return apperr.New(apperr.KindInvalidInput, "a valid email is required")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return apperr.New(apperr.KindInvalidInput, fmt.Sprintf("password must have at least %d characters", MinPasswordLength))
	}
	return nil
}

// defaultName is the local part of the email.
func defaultName(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
