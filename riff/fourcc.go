package riff

import (
	"github.com/wippyai/riff-kit/errors"
)

// FourCC is a 4-byte chunk identifier. ASCII names are conventional in
// RIFF files but not enforced here.
type FourCC [4]byte

// NewFourCC builds an identifier from a string of exactly four bytes.
func NewFourCC(s string) (FourCC, error) {
	if len(s) != 4 {
		return FourCC{}, errors.InvalidChunk("identifier %q must be exactly 4 bytes, have %d", s, len(s))
	}
	var f FourCC
	copy(f[:], s)
	return f, nil
}

// MustFourCC is like NewFourCC but panics on invalid input. Use it for
// identifiers known at compile time.
func MustFourCC(s string) FourCC {
	f, err := NewFourCC(s)
	if err != nil {
		panic(err)
	}
	return f
}

// String returns the four raw bytes as a string.
func (f FourCC) String() string {
	return string(f[:])
}

// IsContainerKeyword reports whether f marks a container chunk.
func (f FourCC) IsContainerKeyword() bool {
	return f == KeywordRIFF || f == KeywordLIST
}
