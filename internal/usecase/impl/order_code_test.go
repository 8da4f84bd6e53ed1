package impl

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderCode_Format(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	code, err := newOrderCode(now)
	require.NoError(t, err)

	parts := strings.Split(code, "-")
	require.Len(t, parts, 3)
	assert.Equal(t, "ORD", parts[0])

	// The prefix encodes the unix timestamp in upper-case base 32.
	wantPrefix := strings.ToUpper(strconv.FormatInt(now.Unix(), 32))
	assert.Equal(t, wantPrefix, parts[1])

	assert.Len(t, parts[2], orderCodeSuffixLen)
	for _, char := range parts[2] {
		assert.Contains(t, orderCodeAlphabet, string(char))
	}
}

func TestNewOrderCode_AlphabetOmitsAmbiguousCharacters(t *testing.T) {
	for _, ambiguous := range []string{"0", "O", "1", "I", "L"} {
		assert.NotContains(t, orderCodeAlphabet, ambiguous)
	}
}

func TestNewOrderCode_SuffixVaries(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		code, err := newOrderCode(now)
		require.NoError(t, err)
		seen[code] = true
	}

	// 50 draws from a 31^6 space colliding down to one value would mean the
	// random source is broken.
	assert.Greater(t, len(seen), 1)
}
