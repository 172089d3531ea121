package home

import (
	"context"

	domain "github.com/homevista/realtor-api/internal/domain/home"
	"github.com/homevista/realtor-api/internal/dto"
)

type ListMessages struct {
	repo domain.Repository
}

func NewListMessages(repo domain.Repository) *ListMessages {
	return &ListMessages{repo: repo}
}

// Execute lists every inquiry for a home with the buyer's contact details.
// Unlike home listings, an empty inquiry list is a valid result.
func (uc *ListMessages) Execute(
	ctx context.Context,
	homeID uint,
) ([]dto.MessageDTO, error) {

	msgs, err := uc.repo.ListMessagesByHome(ctx, homeID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.MessageDTO, 0, len(msgs))
	for i := range msgs {
		out = append(out, dto.NewMessage(&msgs[i]))
	}
	return out, nil
}
