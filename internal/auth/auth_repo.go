package auth

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, acc *Account) error
	// FindByUsernameOrEmail matches either field (logical OR). Callers pass
	// the email already lowercased; the column stores lowercase only.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*Account, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, acc *Account) error {
	return r.db.WithContext(ctx).Create(acc).Error
}

func (r *repository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*Account, error) {
	var acc Account
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", username, email).
		First(&acc).Error
	if err != nil {
		return nil, err
	}
	return &acc, nil
}
