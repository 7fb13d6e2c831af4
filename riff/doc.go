// Package riff provides RIFF binary container parsing and encoding.
//
// This package implements a complete parser and encoder for RIFF-style
// chunk streams: the tagged, length-prefixed, recursively nestable format
// used by WAV, AVI and related media containers.
//
// # Chunk Structure
//
// Every chunk opens with a 4-byte name and a little-endian uint32 length
// covering the payload only. A chunk named RIFF or LIST is a container:
// its payload opens with a 4-byte alt name (the form tag) followed by the
// encodings of its children. Any other name marks a leaf with an opaque
// payload. Chunks whose payload length is odd are followed by one padding
// byte that is excluded from the declared length, so every chunk occupies
// an even number of bytes:
//
//	'R' 'I' 'F' 'F'  u32(length)  'W' 'A' 'V' 'E'  <children...>
//	'd' 'a' 't' 'a'  u32(length)  <payload> [pad]
//
// # Parsing
//
// Parse a chunk tree from a buffer:
//
//	data, _ := os.ReadFile("song.wav")
//	root, err := riff.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Parsing is a bounded recursive descent: each child is decoded from a
// sub-view of its parent's payload and the cursor advances by the child's
// Size, so a malformed length field can never send the parser outside its
// enclosing chunk. A container whose children do not land exactly on its
// declared end is rejected rather than silently truncated.
//
// # Encoding
//
// Encode a tree back to bytes:
//
//	encoded := root.Encode()
//
// Round-trip parsing and encoding preserves the tree exactly; only the
// value of padding bytes may differ:
//
//	original, _ := riff.Parse(data)
//	roundtrip, _ := riff.Parse(original.Encode())
//	// original and roundtrip are equal in names, alt names and payloads
//
// EncodeInto writes into a caller-sized buffer and EncodeTo streams to an
// io.Writer; both take the padding byte as a parameter, and Encode uses
// DefaultPad.
//
// # Lookup
//
// Containers are navigated by position or by tag:
//
//	chunk, err := wave.Child(0)
//	chunk, err := wave.Find(riff.MustFourCC("fmt "))
//
// Find also matches a nested container's alt name, so an AVI's 'hdrl'
// list is addressable even though the chunk itself is named LIST.
//
// # Errors
//
// All failures map to package sentinels (ErrTruncated, ErrInvalidLength,
// ErrInvalidChunk, ErrKeyNotFound, ErrIndexOutOfRange, ErrBufferTooSmall)
// matched with errors.Is; parse errors additionally carry the byte offset
// and the enclosing chunk path.
package riff
