package home

import (
	"context"

	domain "github.com/homevista/realtor-api/internal/domain/home"
	"github.com/homevista/realtor-api/internal/dto"
	"github.com/homevista/realtor-api/internal/httperr"
)

type GetHome struct {
	repo domain.Repository
}

func NewGetHome(repo domain.Repository) *GetHome {
	return &GetHome{repo: repo}
}

func (uc *GetHome) Execute(
	ctx context.Context,
	id uint,
) (*dto.HomeSummaryDTO, error) {

	h, err := uc.repo.GetHomeByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeHomeNotFound)
	}

	summary := dto.NewHomeSummary(h)
	return &summary, nil
}
