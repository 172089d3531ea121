package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/homevista/realtor-api/internal/domain/user"
	"github.com/homevista/realtor-api/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) Create(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
