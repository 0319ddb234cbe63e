// Package testdata generates constraint-compliant synthetic entities for
// tests and seeding. Every generated name is namespaced by a testOwner token
// so parallel runs never collide, and carries a process-wide counter so two
// calls within one process never collide either.
package testdata

import (
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"ledgerkeep/internal/domain"
)

var counter atomic.Int64

// nextCount returns the next value of the process-wide sequence.
func nextCount() int64 {
	return counter.Add(1)
}

// NewTestOwner derives a fresh owner token: lowercase letters only, so it is
// legal as the suffix of an account name.
func NewTestOwner() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	letters := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, raw)
	if len(letters) > 8 {
		letters = letters[:8]
	}
	// A numeric-heavy UUID can leave too few letters; pad deterministically.
	for len(letters) < 4 {
		letters += "x"
	}
	return letters
}

var (
	accountNameStrip  = regexp.MustCompile(`[^a-z-]`)
	categoryNameStrip = regexp.MustCompile(`[^a-z0-9_-]`)
)

// encodeLetters writes n in base 26 using 'a'..'z', because account names
// admit no digits.
func encodeLetters(n int64) string {
	if n == 0 {
		return "a"
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('a' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}

// UniqueAccountName builds a name matching ^[a-z-]*_[a-z]*$ with length in
// [3,40]: cleaned prefix + letter-encoded counter, underscore, owner suffix.
// Over-long results lose owner-suffix characters, never the prefix, so
// failure logs stay readable.
func UniqueAccountName(testOwner, prefix string) string {
	cleanPrefix := accountNameStrip.ReplaceAllString(strings.ToLower(prefix), "")
	if cleanPrefix == "" {
		cleanPrefix = "account"
	}
	cleanOwner := accountNameStrip.ReplaceAllString(strings.ToLower(testOwner), "")
	cleanOwner = strings.ReplaceAll(cleanOwner, "-", "")

	seq := encodeLetters(nextCount())
	if len(cleanPrefix)+len(seq)+1 > domain.AccountNameMaxLen {
		cleanPrefix = cleanPrefix[:domain.AccountNameMaxLen-len(seq)-1]
	}
	name := cleanPrefix + seq + "_" + cleanOwner
	if len(name) > domain.AccountNameMaxLen {
		excess := len(name) - domain.AccountNameMaxLen
		if excess < len(cleanOwner) {
			cleanOwner = cleanOwner[:len(cleanOwner)-excess]
		} else {
			cleanOwner = ""
		}
		name = cleanPrefix + seq + "_" + cleanOwner
	}
	return name
}

// UniqueCategoryName builds a name matching ^[a-z0-9_-]*$ with length in
// [1,50].
func UniqueCategoryName(testOwner, prefix string) string {
	cleanPrefix := categoryNameStrip.ReplaceAllString(strings.ToLower(prefix), "")
	if cleanPrefix == "" {
		cleanPrefix = "category"
	}
	cleanOwner := categoryNameStrip.ReplaceAllString(strings.ToLower(testOwner), "")

	name := cleanPrefix + strconv.FormatInt(nextCount(), 10) + "_" + cleanOwner
	if len(name) > domain.CategoryNameMaxLen {
		name = name[:domain.CategoryNameMaxLen]
	}
	return name
}

// UniqueUsername builds a lowercase username namespaced by the owner token.
func UniqueUsername(testOwner, prefix string) string {
	cleanPrefix := categoryNameStrip.ReplaceAllString(strings.ToLower(prefix), "")
	if cleanPrefix == "" {
		cleanPrefix = "user"
	}
	return cleanPrefix + strconv.FormatInt(nextCount(), 10) + "@" + testOwner + ".example.com"
}
