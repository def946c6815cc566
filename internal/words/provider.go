// internal/words/provider.go
//
// Root word selection for new rounds.
//   - SelectRoot: uniform, cryptographically random pick.
//   - DailyRoot:  deterministic pick for a date using HMAC(salt, YYYY-MM-DD).
//
// Both fall back to FallbackRoot when no usable candidate exists, so a
// round can always start.

package words

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"math/big"
	"strings"
	"time"
)

// FallbackRoot is used whenever the candidate list is empty or unusable.
const FallbackRoot = "silkworm"

// Provider picks root words. The zero value is ready to use.
type Provider struct{}

// SelectRoot returns a random candidate, or FallbackRoot.
func (Provider) SelectRoot(candidates []string) string {
	usable := clean(candidates)
	if len(usable) == 0 {
		return FallbackRoot
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(usable))))
	if err != nil {
		return usable[0]
	}
	return usable[nBig.Int64()]
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyIndex returns a deterministic index for a date using
// HMAC(salt, YYYY-MM-DD) % n.
func DailyIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// DailyRoot returns the root word of the day for date.
func DailyRoot(date time.Time, salt string, candidates []string) string {
	usable := clean(candidates)
	if len(usable) == 0 {
		return FallbackRoot
	}
	return usable[DailyIndex(date, salt, len(usable))]
}

// clean drops blank candidates and lowercases the rest.
func clean(candidates []string) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if w := strings.ToLower(strings.TrimSpace(c)); w != "" {
			out = append(out, w)
		}
	}
	return out
}
