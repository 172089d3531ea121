// Package productkey implements the possession proof gating privileged
// signup. The key is never persisted: issuance bcrypt-hashes a seed derived
// from the claimed email, role and a server-side secret, and verification
// recomputes the same seed against the hash the caller supplies.
package productkey

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/homevista/realtor-api/internal/models"
)

func seed(email string, role models.UserRole, secret string) string {
	return fmt.Sprintf("%s - %s - %s", email, role, secret)
}

// Generate returns the proof handed out-of-band to prospective
// realtors/admins.
func Generate(email string, role models.UserRole, secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(
		[]byte(seed(email, role, secret)),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether proof matches the freshly recomputed seed for this
// email and role. bcrypt's comparison is constant-time.
func Verify(proof, email string, role models.UserRole, secret string) bool {
	err := bcrypt.CompareHashAndPassword(
		[]byte(proof),
		[]byte(seed(email, role, secret)),
	)
	return err == nil
}
