package home

import (
	"context"

	domain "github.com/homevista/realtor-api/internal/domain/home"
	"github.com/homevista/realtor-api/internal/httperr"
	"github.com/homevista/realtor-api/internal/models"
)

type Inquire struct {
	repo domain.Repository
}

func NewInquire(repo domain.Repository) *Inquire {
	return &Inquire{repo: repo}
}

// Execute resolves the home's current realtor and writes a message row
// denormalizing buyer, realtor and home identifiers. The realtor id is a
// deliberate write-time copy, not derived on read.
func (uc *Inquire) Execute(
	ctx context.Context,
	buyerID uint,
	homeID uint,
	body string,
) (*models.Message, error) {

	realtor, err := uc.repo.GetRealtorByHomeID(ctx, homeID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeHomeNotFound)
	}

	m := &models.Message{
		HomeID:    homeID,
		RealtorID: realtor.ID,
		BuyerID:   buyerID,
		Body:      body,
	}

	if err := uc.repo.CreateMessage(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}
