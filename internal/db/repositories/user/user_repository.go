package user

import (
	"context"
	"errors"

	"github.com/MyelinBots/ecochat-go/internal/db"
	"gorm.io/gorm"
)

type UserRepository interface {
	GetUserByID(ctx context.Context, id uint) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// Display names are not unique; the lowest id wins.
	GetUserByName(ctx context.Context, name string) (*User, error)
	GetUsersByIDs(ctx context.Context, ids []uint) ([]*User, error)

	CreateUser(ctx context.Context, u *User) error
	UpdateProfile(ctx context.Context, id uint, name, email string) error
	UpdatePasswordHash(ctx context.Context, id uint, hash string) error
	CountUsers(ctx context.Context) (int64, error)
}

type UserRepositoryImpl struct {
	db *db.DB
}

func NewUserRepository(database *db.DB) UserRepository {
	return &UserRepositoryImpl{db: database}
}

func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, id uint) (*User, error) {
	var u User
	err := r.db.DB.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepositoryImpl) GetUserByName(ctx context.Context, name string) (*User, error) {
	var u User
	// First orders by primary key, so duplicate names resolve to the lowest id.
	err := r.db.DB.WithContext(ctx).Where("name = ?", name).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetUsersByIDs returns the matching users ordered by id. Unknown ids are skipped.
func (r *UserRepositoryImpl) GetUsersByIDs(ctx context.Context, ids []uint) ([]*User, error) {
	if len(ids) == 0 {
		return []*User{}, nil
	}

	var users []*User
	if err := r.db.DB.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepositoryImpl) CreateUser(ctx context.Context, u *User) error {
	return r.db.DB.WithContext(ctx).Create(u).Error
}

func (r *UserRepositoryImpl) UpdateProfile(ctx context.Context, id uint, name, email string) error {
	return r.db.DB.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "email": email}).Error
}

func (r *UserRepositoryImpl) UpdatePasswordHash(ctx context.Context, id uint, hash string) error {
	return r.db.DB.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}

func (r *UserRepositoryImpl) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.DB.WithContext(ctx).Model(&User{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
