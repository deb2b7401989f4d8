package shortener

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

const (
	Alphabet      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	DefaultLength = 7

	// Bytes at or above this value would bias the modulo toward the start of
	// the alphabet and are discarded.
	acceptBelow = 256 - 256%len(Alphabet)
)

var ErrInvalidLength = errors.New("slug length must be positive")

// Shortener produces random slugs drawn uniformly from Alphabet. It is safe
// for concurrent use.
type Shortener struct {
	length int
	random io.Reader
}

func New(length int) (*Shortener, error) {
	if length <= 0 {
		return nil, ErrInvalidLength
	}
	return &Shortener{length: length, random: rand.Reader}, nil
}

func (s *Shortener) Generate() (string, error) {
	slug := make([]byte, 0, s.length)
	// Roughly 3% of bytes get rejected; oversize the buffer a little so one
	// read is almost always enough.
	buf := make([]byte, s.length+s.length/2+1)

	for len(slug) < s.length {
		if _, err := io.ReadFull(s.random, buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= acceptBelow {
				continue
			}
			slug = append(slug, Alphabet[int(b)%len(Alphabet)])
			if len(slug) == s.length {
				break
			}
		}
	}

	return string(slug), nil
}
