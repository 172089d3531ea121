package home

import (
	"context"

	"github.com/homevista/realtor-api/internal/audit"
	domain "github.com/homevista/realtor-api/internal/domain/home"
	"github.com/homevista/realtor-api/internal/dto"
	"github.com/homevista/realtor-api/internal/httperr"
)

type UpdateHome struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateHome(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateHome {
	return &UpdateHome{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies a field-level partial update; nil fields are left
// unchanged. The existence check is advisory: a concurrent delete between
// the read and the save can still slip through.
func (uc *UpdateHome) Execute(
	ctx context.Context,
	id uint,
	in domain.UpdateParams,
) (*dto.HomeSummaryDTO, error) {

	h, err := uc.repo.GetHomeByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeHomeNotFound)
	}

	if in.Address != nil {
		h.Address = *in.Address
	}
	if in.City != nil {
		h.City = *in.City
	}
	if in.Price != nil {
		h.Price = *in.Price
	}
	if in.LandSize != nil {
		h.LandSize = *in.LandSize
	}
	if in.Bedrooms != nil {
		h.Bedrooms = *in.Bedrooms
	}
	if in.Bathrooms != nil {
		h.Bathrooms = *in.Bathrooms
	}
	if in.PropertyType != nil {
		h.PropertyType = *in.PropertyType
	}

	if err := uc.repo.UpdateHome(ctx, h); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "home_updated",
		Entity:   "home",
		EntityID: &h.ID,
	})

	summary := dto.NewHomeSummary(h)
	return &summary, nil
}
