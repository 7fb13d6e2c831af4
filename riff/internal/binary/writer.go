package binary

import (
	"bytes"
	"encoding/binary"
)

// Writer provides buffered writing utilities for chunk encoding.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{buf: &bytes.Buffer{}}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) {
	w.buf.WriteByte(b)
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Write(data)
}

// WriteFourCC writes a 4-byte identifier.
func (w *Writer) WriteFourCC(id [4]byte) {
	w.buf.Write(id[:])
}

// WriteU32LE writes a little-endian uint32 (fixed 4 bytes).
func (w *Writer) WriteU32LE(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}

// PutU32LE stores v into the first four bytes of dst, little-endian.
func PutU32LE(dst []byte, v uint32) {
	binary.LittleEndian.PutUint32(dst, v)
}
