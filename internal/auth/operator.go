package auth

import "golang.org/x/crypto/bcrypt"

var operatorHash string

// SetOperatorHash installs the bcrypt hash of the operator password at
// startup.
func SetOperatorHash(hash string) {
	operatorHash = hash
}

// CheckOperator reports whether the supplied password matches the configured
// operator credential.
func CheckOperator(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(operatorHash), []byte(password)) == nil
}

// HashPassword produces a bcrypt hash for provisioning the operator
// credential.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}
