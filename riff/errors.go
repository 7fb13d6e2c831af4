package riff

import (
	"github.com/wippyai/riff-kit/errors"
)

// Sentinel errors for every failure mode in this package. Match them with
// the standard library's errors.Is: matching is by phase and kind, so
// instances decorated with offsets, chunk paths and details still compare
// equal to the bare sentinel.
var (
	// ErrTruncated reports input too short for its own length fields, or
	// a container whose children disagree with its declared length.
	ErrTruncated = errors.New(errors.PhaseParse, errors.KindTruncated).Build()

	// ErrInvalidLength reports a declared length too large to represent
	// once header and padding are added.
	ErrInvalidLength = errors.New(errors.PhaseParse, errors.KindInvalidLength).Build()

	// ErrInvalidChunk reports construction with an unusable name or an
	// oversized payload.
	ErrInvalidChunk = errors.New(errors.PhaseBuild, errors.KindInvalidChunk).Build()

	// ErrKeyNotFound reports a Find call that matched no child.
	ErrKeyNotFound = errors.New(errors.PhaseLookup, errors.KindNotFound).Build()

	// ErrIndexOutOfRange reports a Child index outside the child list.
	ErrIndexOutOfRange = errors.New(errors.PhaseLookup, errors.KindOutOfRange).Build()

	// ErrBufferTooSmall reports an EncodeInto destination shorter than
	// the chunk's Size.
	ErrBufferTooSmall = errors.New(errors.PhaseEncode, errors.KindBufferTooSmall).Build()
)
