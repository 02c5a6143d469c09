// Package letters holds the per-position letter constraints used to resolve
// wildcard positions, and the position-unaware required-letter set.
package letters

import (
	"errors"
	"fmt"
	"strings"
)

// Alphabet is every letter a Set can hold, in order.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

const fullMask = 1<<len(Alphabet) - 1

var (
	ErrInvalidLetter = errors.New("invalid letter")
	ErrPosition      = errors.New("position out of range")
)

// Set is a set of lowercase ASCII letters, one bit per letter.
type Set uint32

// Full returns the set holding the whole alphabet.
func Full() Set {
	return Set(fullMask)
}

// Index maps a letter of either case to 0..25. ok is false for any
// other byte.
func Index(c byte) (int, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), true
	}
	return 0, false
}

// Parse builds a set from a string of letters. Repeated letters are
// idempotent and case is ignored. Any other byte is an error.
func Parse(s string) (Set, error) {
	var set Set
	for i := 0; i < len(s); i++ {
		idx, ok := Index(s[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, s[i])
		}
		set |= 1 << idx
	}
	return set, nil
}

// Contains reports whether c is in the set, case-insensitively.
func (s Set) Contains(c byte) bool {
	idx, ok := Index(c)
	return ok && s&(1<<idx) != 0
}

// Union returns the letters in either set.
func (s Set) Union(o Set) Set {
	return s | o
}

// Without returns the letters of s not in o.
func (s Set) Without(o Set) Set {
	return s &^ o
}

// Len returns the number of letters in the set.
func (s Set) Len() int {
	n := 0
	for v := s & fullMask; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Empty reports whether the set holds no letters.
func (s Set) Empty() bool {
	return s&fullMask == 0
}

// String lists the letters in alphabet order.
func (s Set) String() string {
	var b strings.Builder
	for i := 0; i < len(Alphabet); i++ {
		if s&(1<<i) != 0 {
			b.WriteByte(Alphabet[i])
		}
	}
	return b.String()
}
