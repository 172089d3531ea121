package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/homevista/realtor-api/internal/audit"
	"github.com/homevista/realtor-api/internal/auth/productkey"
	domain "github.com/homevista/realtor-api/internal/domain/user"
	"github.com/homevista/realtor-api/internal/httperr"
	"github.com/homevista/realtor-api/internal/models"
	"github.com/homevista/realtor-api/internal/token"
)

type SignupInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Role     models.UserRole

	// ProductKey is the possession proof required for non-buyer roles.
	ProductKey string
}

type SignupResult struct {
	User  *models.User
	Token string
}

type Signup struct {
	repo             domain.Repository
	signer           *token.Signer
	productKeySecret string
	audit            *audit.Dispatcher
}

func NewSignup(
	repo domain.Repository,
	signer *token.Signer,
	productKeySecret string,
	audit *audit.Dispatcher,
) *Signup {
	return &Signup{
		repo:             repo,
		signer:           signer,
		productKeySecret: productKeySecret,
		audit:            audit,
	}
}

// Execute registers a user and returns a signed identity token. Privileged
// roles pass through the product-key gate here, the single choke point for
// role-based signup.
func (uc *Signup) Execute(
	ctx context.Context,
	in SignupInput,
) (*SignupResult, error) {

	if in.Role.RequiresProductKey() {
		if in.ProductKey == "" ||
			!productkey.Verify(in.ProductKey, in.Email, in.Role, uc.productKeySecret) {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidProductKey)
		}
	}

	if _, err := uc.repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, httperr.ErrBusiness(httperr.CodeEmailTaken)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hashed),
		Phone:        in.Phone,
		Role:         in.Role,
	}

	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	signed, err := uc.signer.Sign(user)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"role": user.Role},
	})

	return &SignupResult{User: user, Token: signed}, nil
}
