package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/homevista/realtor-api/internal/domain/home"
	"github.com/homevista/realtor-api/internal/models"
)

type HomeGormRepository struct {
	db *gorm.DB
}

func NewHomeGormRepository(db *gorm.DB) *HomeGormRepository {
	return &HomeGormRepository{db: db}
}

// previewImages keeps image preloads in insertion order so callers can take
// the first row as the preview.
func previewImages(db *gorm.DB) *gorm.DB {
	return db.Order("images.id ASC")
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (r *HomeGormRepository) ListHomes(
	ctx context.Context,
	filter domain.Filter,
) ([]models.Home, error) {

	q := r.db.WithContext(ctx).Model(&models.Home{})

	if filter.City != "" {
		q = q.Where("city = ?", filter.City)
	}
	if filter.PropertyType != "" {
		q = q.Where("property_type = ?", filter.PropertyType)
	}
	if filter.PriceGte != nil {
		q = q.Where("price >= ?", *filter.PriceGte)
	}
	if filter.PriceLte != nil {
		q = q.Where("price <= ?", *filter.PriceLte)
	}

	var homes []models.Home
	if err := q.
		Preload("Images", previewImages).
		Order("id ASC").
		Find(&homes).Error; err != nil {
		return nil, err
	}

	return homes, nil
}

func (r *HomeGormRepository) GetHomeByID(
	ctx context.Context,
	id uint,
) (*models.Home, error) {

	var h models.Home
	if err := r.db.WithContext(ctx).
		Preload("Images", previewImages).
		First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HomeGormRepository) GetRealtorByHomeID(
	ctx context.Context,
	homeID uint,
) (*models.User, error) {

	var h models.Home
	if err := r.db.WithContext(ctx).
		Preload("Realtor").
		First(&h, homeID).Error; err != nil {
		return nil, err
	}
	return &h.Realtor, nil
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

func (r *HomeGormRepository) CreateHomeWithImages(
	ctx context.Context,
	h *models.Home,
	images []models.Image,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(h).Error; err != nil {
			return err
		}
		if len(images) == 0 {
			return nil
		}
		for i := range images {
			images[i].HomeID = h.ID
		}
		return tx.Create(&images).Error
	})
}

func (r *HomeGormRepository) UpdateHome(
	ctx context.Context,
	h *models.Home,
) error {
	return r.db.WithContext(ctx).Omit("Images", "Realtor").Save(h).Error
}

// DeleteHomeWithImages removes the image rows first so the home row is never
// deleted while images still reference it.
func (r *HomeGormRepository) DeleteHomeWithImages(
	ctx context.Context,
	homeID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("home_id = ?", homeID).
			Delete(&models.Image{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Home{}, homeID).Error
	})
}

func (r *HomeGormRepository) AddImage(
	ctx context.Context,
	img *models.Image,
) error {
	return r.db.WithContext(ctx).Create(img).Error
}

// --------------------------------------------------
// Inquiries
// --------------------------------------------------

func (r *HomeGormRepository) CreateMessage(
	ctx context.Context,
	m *models.Message,
) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *HomeGormRepository) ListMessagesByHome(
	ctx context.Context,
	homeID uint,
) ([]models.Message, error) {

	var msgs []models.Message
	if err := r.db.WithContext(ctx).
		Preload("Buyer").
		Where("home_id = ?", homeID).
		Order("id ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

// Compile-time check
var _ domain.Repository = (*HomeGormRepository)(nil)
