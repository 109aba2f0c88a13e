// Package ids generates character card identifiers.
//
// An identifier is a base-36 millisecond timestamp, a dash, and seven
// random base-36 characters. The timestamp component keeps ids roughly
// sortable by creation time; the random component makes collisions
// negligible at the scale of a hand-authored card collection. Nothing
// cryptographic is guaranteed.
package ids

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	alphabet  = "0123456789abcdefghijklmnopqrstuvwxyz"
	randomLen = 7
)

var idPattern = regexp.MustCompile(`^[0-9a-z]+-[0-9a-z]{7}$`)

// New returns a fresh identifier.
func New() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return ts + "-" + randomPart(randomLen)
}

// IsValid reports whether s looks like an identifier produced by New.
func IsValid(s string) bool {
	return idPattern.MatchString(s)
}

func randomPart(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; if it does,
		// something is deeply wrong with the host.
		panic(fmt.Sprintf("ids: reading random bytes: %v", err))
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}
