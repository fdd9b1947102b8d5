package secret

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("secret hashing failed")
	ErrComparisonFailed = errors.New("secret comparison failed")
	ErrInvalidSecret    = errors.New("invalid secret")
)

const DefaultCost = bcrypt.DefaultCost

// HashAPIKey hashes a partner API key for at-rest storage on the business row.
func HashAPIKey(apiKey string) (string, error) {
	if apiKey == "" {
		return "", ErrInvalidSecret
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(apiKey), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func CompareAPIKey(hashedKey, apiKey string) error {
	if hashedKey == "" || apiKey == "" {
		return ErrInvalidSecret
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedKey), []byte(apiKey))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}
