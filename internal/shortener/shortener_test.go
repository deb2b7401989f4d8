package shortener_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shorty/internal/shortener"
)

func TestNew(t *testing.T) {
	s, err := shortener.New(shortener.DefaultLength)
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestNew_InvalidLength(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := shortener.New(n)
		assert.ErrorIs(t, err, shortener.ErrInvalidLength)
	}
}

func TestAlphabet(t *testing.T) {
	assert.Len(t, shortener.Alphabet, 62)
	for _, r := range shortener.Alphabet {
		assert.Equal(t, 1, strings.Count(shortener.Alphabet, string(r)), "duplicate %q", r)
	}
}

func TestGenerate_Shape(t *testing.T) {
	s, err := shortener.New(shortener.DefaultLength)
	require.NoError(t, err)

	pattern := regexp.MustCompile(`^[0-9A-Za-z]{7}$`)
	for range 1000 {
		slug, err := s.Generate()
		require.NoError(t, err)
		assert.Regexp(t, pattern, slug)
	}
}

func TestGenerate_CustomLength(t *testing.T) {
	s, err := shortener.New(32)
	require.NoError(t, err)

	slug, err := s.Generate()
	require.NoError(t, err)
	assert.Len(t, slug, 32)
}

func TestGenerate_Distinct(t *testing.T) {
	s, err := shortener.New(shortener.DefaultLength)
	require.NoError(t, err)

	seen := make(map[string]struct{}, 10000)
	for range 10000 {
		slug, err := s.Generate()
		require.NoError(t, err)
		seen[slug] = struct{}{}
	}
	// 62^7 keyspace; a collision among 10k draws is vanishingly unlikely.
	assert.Len(t, seen, 10000)
}

func TestGenerate_CoversAlphabet(t *testing.T) {
	s, err := shortener.New(shortener.DefaultLength)
	require.NoError(t, err)

	counts := make(map[rune]int, len(shortener.Alphabet))
	for range 5000 {
		slug, err := s.Generate()
		require.NoError(t, err)
		for _, r := range slug {
			counts[r]++
		}
	}
	assert.Len(t, counts, len(shortener.Alphabet))
}
