// Package password wraps the bcrypt hashing primitive behind the narrow
// encode/matches surface the auth service needs.
package password

import "golang.org/x/crypto/bcrypt"

// Encode hashes a plain-text password with bcrypt at the default cost.
func Encode(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Matches reports whether plain matches the stored bcrypt hash.
func Matches(plain string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
