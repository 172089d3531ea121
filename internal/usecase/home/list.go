package home

import (
	"context"

	domain "github.com/homevista/realtor-api/internal/domain/home"
	"github.com/homevista/realtor-api/internal/dto"
	"github.com/homevista/realtor-api/internal/httperr"
)

type ListHomes struct {
	repo domain.Repository
}

func NewListHomes(repo domain.Repository) *ListHomes {
	return &ListHomes{repo: repo}
}

// Execute returns summaries for every home matching the filter. An empty
// result set is a not-found condition, never an empty list; callers rely on
// that contract.
func (uc *ListHomes) Execute(
	ctx context.Context,
	filter domain.Filter,
) ([]dto.HomeSummaryDTO, error) {

	homes, err := uc.repo.ListHomes(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(homes) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeHomeNotFound)
	}

	out := make([]dto.HomeSummaryDTO, 0, len(homes))
	for i := range homes {
		out = append(out, dto.NewHomeSummary(&homes[i]))
	}
	return out, nil
}
