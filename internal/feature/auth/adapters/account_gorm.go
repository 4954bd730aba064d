// Package adapters provides repository implementations for the auth
// feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/amyzliao/finance/internal/feature/auth/domain/entity"
	"github.com/amyzliao/finance/internal/feature/auth/usecase"
)

// accountGorm is the GORM implementation of the AccountRepository
// interface.
type accountGorm struct {
	db *gorm.DB
}

// Compile-time check that accountGorm implements AccountRepository.
var _ usecase.AccountRepository = (*accountGorm)(nil)

// NewAccountGorm creates a new instance of accountGorm with the given
// gorm.DB connection.
func NewAccountGorm(db *gorm.DB) *accountGorm {
	return &accountGorm{db: db}
}

// Create adds an account to the database. It relies on GORM's TranslateError
// so the unique-username violation surfaces the same way on Postgres and on
// the SQLite used in tests.
func (r *accountGorm) Create(ctx context.Context, a *entity.Account) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrUsernameTaken
		}
		return err
	}
	return nil
}

// FindByUsername retrieves an account by username.
func (r *accountGorm) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	var a entity.Account
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindByID retrieves an account by ID.
func (r *accountGorm) FindByID(ctx context.Context, id uint) (*entity.Account, error) {
	var a entity.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}
