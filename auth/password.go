package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt embeds a random salt per hash; comparison is constant time inside
// the library.
const bcryptCost = 10

func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
