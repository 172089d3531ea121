package home

import (
	"context"

	"github.com/homevista/realtor-api/internal/audit"
	domain "github.com/homevista/realtor-api/internal/domain/home"
	"github.com/homevista/realtor-api/internal/dto"
	"github.com/homevista/realtor-api/internal/models"
)

type CreateHome struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateHome(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateHome {
	return &CreateHome{
		repo:  repo,
		audit: audit,
	}
}

// Execute inserts the home referencing ownerID as realtor, then bulk-inserts
// the image rows against the new home ID. The returned summary carries no
// preview; images are attached to reads, not to the create response.
func (uc *CreateHome) Execute(
	ctx context.Context,
	in domain.CreateParams,
	ownerID uint,
) (*dto.HomeSummaryDTO, error) {

	h := &models.Home{
		Address:      in.Address,
		City:         in.City,
		Price:        in.Price,
		LandSize:     in.LandSize,
		Bedrooms:     in.Bedrooms,
		Bathrooms:    in.Bathrooms,
		PropertyType: in.PropertyType,
		RealtorID:    ownerID,
	}

	images := make([]models.Image, 0, len(in.ImageURLs))
	for _, url := range in.ImageURLs {
		images = append(images, models.Image{URL: url})
	}

	if err := uc.repo.CreateHomeWithImages(ctx, h, images); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ownerID,
		Action:   "home_created",
		Entity:   "home",
		EntityID: &h.ID,
	})

	summary := dto.NewHomeSummary(h)
	return &summary, nil
}
