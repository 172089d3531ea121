package httperr

import "errors"

// Canonical business codes. Handlers translate these to HTTP statuses; use
// cases never touch the transport.
const (
	CodeHomeNotFound       = "home_not_found"
	CodeEmailTaken         = "email_already_registered"
	CodeInvalidProductKey  = "invalid_product_key"
	CodeInvalidCredentials = "invalid_credentials"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
