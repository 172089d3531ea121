package home

import (
	"context"

	domain "github.com/homevista/realtor-api/internal/domain/home"
	"github.com/homevista/realtor-api/internal/dto"
	"github.com/homevista/realtor-api/internal/httperr"
)

type GetRealtor struct {
	repo domain.Repository
}

func NewGetRealtor(repo domain.Repository) *GetRealtor {
	return &GetRealtor{repo: repo}
}

func (uc *GetRealtor) Execute(
	ctx context.Context,
	homeID uint,
) (*dto.RealtorContactDTO, error) {

	realtor, err := uc.repo.GetRealtorByHomeID(ctx, homeID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeHomeNotFound)
	}

	contact := dto.NewRealtorContact(realtor)
	return &contact, nil
}
