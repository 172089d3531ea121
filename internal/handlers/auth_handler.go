package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/homevista/realtor-api/internal/auth/productkey"
	"github.com/homevista/realtor-api/internal/config"
	"github.com/homevista/realtor-api/internal/httperr"
	"github.com/homevista/realtor-api/internal/models"
	ucAuth "github.com/homevista/realtor-api/internal/usecase/auth"
	"github.com/homevista/realtor-api/internal/validators"
)

type AuthHandler struct {
	signup *ucAuth.Signup
	signin *ucAuth.Signin
	config *config.Config
}

func NewAuthHandler(
	signup *ucAuth.Signup,
	signin *ucAuth.Signin,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		signup: signup,
		signin: signin,
		config: cfg,
	}
}

// --------- Requests ---------

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`

	// Required for realtor/admin signup, ignored for buyers.
	ProductKey string `json:"product_key"`
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GenerateKeyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	role, ok := models.ParseUserRole(c.Param("role"))
	if !ok {
		httperr.BadRequest(c, "invalid_role", "Unknown signup role.")
		return
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if h.config.VerifyEmailDomain && !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not resolve.")
		return
	}

	res, err := h.signup.Execute(c.Request.Context(), ucAuth.SignupInput{
		Email:      email,
		Password:   req.Password,
		Name:       req.Name,
		Phone:      req.Phone,
		Role:       role,
		ProductKey: req.ProductKey,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeInvalidProductKey):
			httperr.Unauthorized(c, httperr.CodeInvalidProductKey, "Product key missing or invalid.")
		case httperr.IsBusiness(err, httperr.CodeEmailTaken):
			httperr.Conflict(c, httperr.CodeEmailTaken, "A user with this email already exists.")
		default:
			httperr.Internal(c, "signup_failed", "Could not register user.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":    res.User.ID,
			"name":  res.User.Name,
			"email": res.User.Email,
			"phone": res.User.Phone,
			"role":  res.User.Role,
		},
		"token": res.Token,
	})
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	res, err := h.signin.Execute(c.Request.Context(), email, req.Password)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidCredentials) {
			// Same code for unknown email and wrong password.
			httperr.Unauthorized(c, httperr.CodeInvalidCredentials, "Invalid email or password.")
			return
		}
		httperr.Internal(c, "signin_failed", "Could not sign in.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    res.User.ID,
			"name":  res.User.Name,
			"email": res.User.Email,
			"phone": res.User.Phone,
			"role":  res.User.Role,
		},
		"token": res.Token,
	})
}

// GenerateKey issues the out-of-band possession proof for privileged
// signup. The proof is derived, never stored.
func (h *AuthHandler) GenerateKey(c *gin.Context) {
	var req GenerateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	role, ok := models.ParseUserRole(req.Role)
	if !ok {
		httperr.BadRequest(c, "invalid_role", "Unknown role.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	key, err := productkey.Generate(email, role, h.config.ProductKeySecret)
	if err != nil {
		httperr.Internal(c, "key_generation_failed", "Could not generate product key.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"product_key": key})
}
