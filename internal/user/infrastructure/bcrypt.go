package infrastructure

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/mmacedo-dev/bustrip/internal/user/domain"
)

type bcryptHasher struct {
	cost int
}

func NewBcryptHasher() domain.PasswordHasher {
	return bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h bcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h bcryptHasher) Compare(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
