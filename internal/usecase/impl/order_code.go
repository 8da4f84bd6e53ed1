package impl

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"

	"vend/internal/errors"
)

// orderCodeAlphabet omits characters that are easily confused when codes are
// shared by hand (0/O, 1/I/L).
const orderCodeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const orderCodeSuffixLen = 6

// newOrderCode builds a shareable order code: a time-derived prefix for rough
// chronological ordering plus a high-entropy random suffix. Uniqueness is
// enforced by the orders code index; callers regenerate on collision.
func newOrderCode(now time.Time) (string, error) {
	buf := make([]byte, orderCodeSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes for order code")
	}

	var suffix strings.Builder
	suffix.Grow(orderCodeSuffixLen)
	for _, b := range buf {
		suffix.WriteByte(orderCodeAlphabet[int(b)%len(orderCodeAlphabet)])
	}

	prefix := strings.ToUpper(strconv.FormatInt(now.UTC().Unix(), 32))

	return "ORD-" + prefix + "-" + suffix.String(), nil
}
