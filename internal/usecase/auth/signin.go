package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/homevista/realtor-api/internal/domain/user"
	"github.com/homevista/realtor-api/internal/httperr"
	"github.com/homevista/realtor-api/internal/models"
	"github.com/homevista/realtor-api/internal/token"
)

type SigninResult struct {
	User  *models.User
	Token string
}

type Signin struct {
	repo   domain.Repository
	signer *token.Signer
}

func NewSignin(
	repo domain.Repository,
	signer *token.Signer,
) *Signin {
	return &Signin{
		repo:   repo,
		signer: signer,
	}
}

// Execute authenticates by email and password. Unknown email and wrong
// password fail with the same code so callers cannot enumerate accounts.
func (uc *Signin) Execute(
	ctx context.Context,
	email string,
	password string,
) (*SigninResult, error) {

	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(password),
	); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	signed, err := uc.signer.Sign(user)
	if err != nil {
		return nil, err
	}

	return &SigninResult{User: user, Token: signed}, nil
}
