package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// GenerateOTP returns a six-digit one-time code. Codes are never stored in
// clear text; callers hash them with HashOTP before persisting.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func HashOTP(code string) (string, error) {
	if code == "" {
		return "", errors.New("empty otp code")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CompareOTP(hash, code string) error {
	if hash == "" || code == "" {
		return errors.New("missing hash or code")
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code))
}
