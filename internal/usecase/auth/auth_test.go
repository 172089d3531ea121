package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/homevista/realtor-api/internal/audit"
	"github.com/homevista/realtor-api/internal/auth/productkey"
	infraRepo "github.com/homevista/realtor-api/internal/infra/repository"
	"github.com/homevista/realtor-api/internal/httperr"
	"github.com/homevista/realtor-api/internal/models"
	"github.com/homevista/realtor-api/internal/token"
	ucAuth "github.com/homevista/realtor-api/internal/usecase/auth"
)

const (
	testJWTSecret = "test-jwt-secret"
	testKeySecret = "test-product-key-secret"
	testTokenTTL  = 100 * time.Hour
	buyerEmail    = "buyer@example.test"
	buyerPassword = "hunter22"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.AuditLog{}))
	return db
}

func newSignup(db *gorm.DB) *ucAuth.Signup {
	return ucAuth.NewSignup(
		infraRepo.NewUserGormRepository(db),
		token.NewSigner(testJWTSecret, testTokenTTL),
		testKeySecret,
		audit.NewDispatcher(audit.New(db)),
	)
}

func newSignin(db *gorm.DB) *ucAuth.Signin {
	return ucAuth.NewSignin(
		infraRepo.NewUserGormRepository(db),
		token.NewSigner(testJWTSecret, testTokenTTL),
	)
}

func buyerInput() ucAuth.SignupInput {
	return ucAuth.SignupInput{
		Email:    buyerEmail,
		Password: buyerPassword,
		Name:     "Bob Buyer",
		Phone:    "555-0200",
		Role:     models.RoleBuyer,
	}
}

func decodeToken(t *testing.T, signed string) jwt.MapClaims {
	parsed, err := jwt.Parse(signed, func(tk *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestSignup_BuyerGetsDecodableToken(t *testing.T) {
	db := setupTestDB(t)

	res, err := newSignup(db).Execute(context.Background(), buyerInput())
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	claims := decodeToken(t, res.Token)
	assert.EqualValues(t, res.User.ID, claims["sub"])
	assert.Equal(t, "Bob Buyer", claims["name"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(testTokenTTL), exp.Time, time.Minute)
}

func TestSignup_DuplicateEmailIsConflict(t *testing.T) {
	db := setupTestDB(t)
	signup := newSignup(db)

	_, err := signup.Execute(context.Background(), buyerInput())
	require.NoError(t, err)

	// Same email fails regardless of role or password.
	again := buyerInput()
	again.Password = "different-password"
	_, err = signup.Execute(context.Background(), again)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeEmailTaken))

	key, err := productkey.Generate(buyerEmail, models.RoleRealtor, testKeySecret)
	require.NoError(t, err)

	asRealtor := buyerInput()
	asRealtor.Role = models.RoleRealtor
	asRealtor.ProductKey = key
	_, err = signup.Execute(context.Background(), asRealtor)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeEmailTaken))
}

func TestSignup_RealtorRequiresProductKey(t *testing.T) {
	db := setupTestDB(t)
	signup := newSignup(db)

	in := ucAuth.SignupInput{
		Email:    "eve@example.test",
		Password: "password1",
		Name:     "Eve",
		Role:     models.RoleRealtor,
	}

	// Missing key.
	_, err := signup.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidProductKey))

	// Key issued for a different role.
	wrongRole, err := productkey.Generate(in.Email, models.RoleAdmin, testKeySecret)
	require.NoError(t, err)
	in.ProductKey = wrongRole
	_, err = signup.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidProductKey))

	// Correct proof succeeds and the user lands with the claimed role.
	key, err := productkey.Generate(in.Email, models.RoleRealtor, testKeySecret)
	require.NoError(t, err)
	in.ProductKey = key
	res, err := signup.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, models.RoleRealtor, res.User.Role)

	claims := decodeToken(t, res.Token)
	assert.EqualValues(t, res.User.ID, claims["sub"])
	assert.Equal(t, "Eve", claims["name"])
}

func TestSignin_Success(t *testing.T) {
	db := setupTestDB(t)

	_, err := newSignup(db).Execute(context.Background(), buyerInput())
	require.NoError(t, err)

	res, err := newSignin(db).Execute(context.Background(), buyerEmail, buyerPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, buyerEmail, res.User.Email)
}

func TestSignin_UniformFailure(t *testing.T) {
	db := setupTestDB(t)

	_, err := newSignup(db).Execute(context.Background(), buyerInput())
	require.NoError(t, err)

	signin := newSignin(db)

	// Wrong password and unknown email fail with the same code so accounts
	// cannot be enumerated.
	_, errWrongPass := signin.Execute(context.Background(), buyerEmail, "not-the-password")
	_, errNoUser := signin.Execute(context.Background(), "ghost@example.test", buyerPassword)

	assert.True(t, httperr.IsBusiness(errWrongPass, httperr.CodeInvalidCredentials))
	assert.True(t, httperr.IsBusiness(errNoUser, httperr.CodeInvalidCredentials))
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestSignup_StoresHashedPassword(t *testing.T) {
	db := setupTestDB(t)

	res, err := newSignup(db).Execute(context.Background(), buyerInput())
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.First(&stored, res.User.ID).Error)
	assert.NotEqual(t, buyerPassword, stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}
