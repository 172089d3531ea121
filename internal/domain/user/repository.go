package user

import (
	"context"

	"github.com/homevista/realtor-api/internal/models"
)

type Repository interface {
	GetByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	Create(
		ctx context.Context,
		u *models.User,
	) error
}
