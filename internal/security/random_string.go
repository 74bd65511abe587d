package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var (
	// ErrNegativeLength is returned when a negative length is requested.
	ErrNegativeLength = errors.New("length must be non-negative")
	// ErrEmptyAlphabet is returned when the alphabet has no characters to pick from.
	ErrEmptyAlphabet = errors.New("alphabet must not be empty")
)

// RandomString draws length characters uniformly from alphabet using
// crypto/rand. Each position is sampled with rand.Int, so the result
// carries no modulo bias.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", ErrNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", ErrEmptyAlphabet
	}

	bound := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		pick, err := rand.Int(rand.Reader, bound)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[pick.Int64()]
	}

	return string(out), nil
}
