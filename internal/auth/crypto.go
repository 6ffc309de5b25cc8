package auth

import "golang.org/x/crypto/bcrypt"

const (
	bcryptRounds = 10
)

func HashPassword(password string) (string, error) {
	if len(password) == 0 {
		return "", ErrInvalidPass
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcryptRounds)
	return string(h), err
}

func CheckPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
