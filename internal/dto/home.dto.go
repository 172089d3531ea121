package dto

import "github.com/homevista/realtor-api/internal/models"

// HomeSummaryDTO flattens the one-to-many image relation into a single
// preview URL: the first image by insertion order, absent when there are
// no images.
type HomeSummaryDTO struct {
	ID           uint                `json:"id"`
	Address      string              `json:"address"`
	City         string              `json:"city"`
	Price        float64             `json:"price"`
	LandSize     float64             `json:"land_size"`
	Bedrooms     int                 `json:"bedrooms"`
	Bathrooms    int                 `json:"bathrooms"`
	PropertyType models.PropertyType `json:"property_type"`
	RealtorID    uint                `json:"realtor_id"`
	Image        *string             `json:"image,omitempty"`
}

func NewHomeSummary(h *models.Home) HomeSummaryDTO {
	out := HomeSummaryDTO{
		ID:           h.ID,
		Address:      h.Address,
		City:         h.City,
		Price:        h.Price,
		LandSize:     h.LandSize,
		Bedrooms:     h.Bedrooms,
		Bathrooms:    h.Bathrooms,
		PropertyType: h.PropertyType,
		RealtorID:    h.RealtorID,
	}
	if len(h.Images) > 0 {
		url := h.Images[0].URL
		out.Image = &url
	}
	return out
}

type RealtorContactDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func NewRealtorContact(u *models.User) RealtorContactDTO {
	return RealtorContactDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}
