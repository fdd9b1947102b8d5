package promocode

import (
	"crypto/rand"
	"math/big"
)

// Generator produces fixed-width numeric codes. Swappable so tests can pin
// the sequence.
type Generator interface {
	Generate(length int) (string, error)
}

type randomGenerator struct{}

func NewRandomGenerator() Generator {
	return randomGenerator{}
}

func (randomGenerator) Generate(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
