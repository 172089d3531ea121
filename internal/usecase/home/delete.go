package home

import (
	"context"

	"github.com/homevista/realtor-api/internal/audit"
	domain "github.com/homevista/realtor-api/internal/domain/home"
	"github.com/homevista/realtor-api/internal/httperr"
)

type DeleteHome struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteHome(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteHome {
	return &DeleteHome{
		repo:  repo,
		audit: audit,
	}
}

// Execute deletes the home's images and then the home itself, in that
// order. A second call for the same id fails with not-found.
func (uc *DeleteHome) Execute(
	ctx context.Context,
	id uint,
) error {

	if _, err := uc.repo.GetHomeByID(ctx, id); err != nil {
		return httperr.ErrBusiness(httperr.CodeHomeNotFound)
	}

	if err := uc.repo.DeleteHomeWithImages(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "home_deleted",
		Entity:   "home",
		EntityID: &id,
	})

	return nil
}
