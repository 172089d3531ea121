package home

import (
	"context"

	"github.com/homevista/realtor-api/internal/models"
)

// Repository is the persistence contract of the listing service. Each call
// is atomic on its own; the only cross-row guarantees are the two explicit
// transactional writes (create-with-images, delete-with-images).
type Repository interface {
	// -------- Queries --------
	ListHomes(
		ctx context.Context,
		filter Filter,
	) ([]models.Home, error)

	GetHomeByID(
		ctx context.Context,
		id uint,
	) (*models.Home, error)

	GetRealtorByHomeID(
		ctx context.Context,
		homeID uint,
	) (*models.User, error)

	// -------- Mutations --------
	CreateHomeWithImages(
		ctx context.Context,
		h *models.Home,
		images []models.Image,
	) error

	UpdateHome(
		ctx context.Context,
		h *models.Home,
	) error

	DeleteHomeWithImages(
		ctx context.Context,
		homeID uint,
	) error

	AddImage(
		ctx context.Context,
		img *models.Image,
	) error

	// -------- Inquiries --------
	CreateMessage(
		ctx context.Context,
		m *models.Message,
	) error

	ListMessagesByHome(
		ctx context.Context,
		homeID uint,
	) ([]models.Message, error)
}
