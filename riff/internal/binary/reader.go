package binary

import (
	"encoding/binary"
	"io"
)

// Reader provides positioned reads over a byte view with chunk-specific
// read methods. Reads never copy: returned slices alias the view.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a new Reader over the given view.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, pos: 0}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// ReadBytes reads exactly n bytes. The returned slice aliases the
// underlying view and must be treated as read-only.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > len(r.data)-r.pos {
		return nil, io.ErrUnexpectedEOF
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadFourCC reads a 4-byte identifier.
func (r *Reader) ReadFourCC() ([4]byte, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return [4]byte{}, err
	}
	return [4]byte(b), nil
}

// ReadU32LE reads a little-endian uint32 (fixed 4 bytes).
func (r *Reader) ReadU32LE() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}
