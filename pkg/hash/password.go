package hash

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// Password hashes a plain text password with bcrypt and a per-hash random salt.
func Password(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Matches reports whether plain hashes to the stored bcrypt hash.
func Matches(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
