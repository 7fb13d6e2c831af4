package riff

import (
	"io"

	"github.com/wippyai/riff-kit/errors"
	"github.com/wippyai/riff-kit/riff/internal/binary"
)

// encodeInto checks the destination once up front; writeInto then runs
// without bounds checks because Size covers every descendant.
func encodeInto(c Chunk, dst []byte, pad byte) (int, error) {
	if need := c.Size(); uint64(len(dst)) < uint64(need) {
		return 0, errors.BufferTooSmall(int(need), len(dst))
	}
	return c.writeInto(dst, pad), nil
}

// Encode returns the encoded leaf, padded with DefaultPad.
func (l *Leaf) Encode() []byte {
	w := binary.NewWriter()
	l.appendTo(w, DefaultPad)
	return w.Bytes()
}

// EncodeInto writes the encoded leaf at dst[0].
func (l *Leaf) EncodeInto(dst []byte, pad byte) (int, error) {
	return encodeInto(l, dst, pad)
}

// EncodeTo streams the encoded leaf to w.
func (l *Leaf) EncodeTo(w io.Writer, pad byte) (int64, error) {
	var hdr [HeaderSize]byte
	copy(hdr[0:4], l.name[:])
	binary.PutU32LE(hdr[4:8], uint32(len(l.data)))

	n, err := w.Write(hdr[:])
	written := int64(n)
	if err != nil {
		return written, errors.Wrap(errors.PhaseEncode, errors.KindIO, err, "write chunk header")
	}

	n, err = w.Write(l.data)
	written += int64(n)
	if err != nil {
		return written, errors.Wrap(errors.PhaseEncode, errors.KindIO, err, "write chunk payload")
	}

	if len(l.data)%2 != 0 {
		n, err = w.Write([]byte{pad})
		written += int64(n)
		if err != nil {
			return written, errors.Wrap(errors.PhaseEncode, errors.KindIO, err, "write padding byte")
		}
	}
	return written, nil
}

func (l *Leaf) appendTo(w *binary.Writer, pad byte) {
	w.WriteFourCC(l.name)
	w.WriteU32LE(uint32(len(l.data)))
	w.WriteBytes(l.data)
	if len(l.data)%2 != 0 {
		w.Byte(pad)
	}
}

func (l *Leaf) writeInto(dst []byte, pad byte) int {
	copy(dst[0:4], l.name[:])
	binary.PutU32LE(dst[4:8], uint32(len(l.data)))
	copy(dst[HeaderSize:], l.data)
	n := HeaderSize + len(l.data)
	if len(l.data)%2 != 0 {
		dst[n] = pad
		n++
	}
	return n
}

// Encode returns the encoded container and all descendants, padded with
// DefaultPad.
func (c *Container) Encode() []byte {
	w := binary.NewWriter()
	c.appendTo(w, DefaultPad)
	return w.Bytes()
}

// EncodeInto writes the encoded container and all descendants at dst[0].
func (c *Container) EncodeInto(dst []byte, pad byte) (int, error) {
	return encodeInto(c, dst, pad)
}

// EncodeTo streams the encoded container and all descendants to w. The
// declared length in the container header is fixed at construction, so
// no size pass is needed before the header goes out.
func (c *Container) EncodeTo(w io.Writer, pad byte) (int64, error) {
	var hdr [containerHeaderSize]byte
	copy(hdr[0:4], c.name[:])
	binary.PutU32LE(hdr[4:8], c.bodyLen)
	copy(hdr[8:12], c.altName[:])

	n, err := w.Write(hdr[:])
	written := int64(n)
	if err != nil {
		return written, errors.Wrap(errors.PhaseEncode, errors.KindIO, err, "write container header")
	}

	for _, child := range c.children {
		cn, err := child.EncodeTo(w, pad)
		written += cn
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

func (c *Container) appendTo(w *binary.Writer, pad byte) {
	w.WriteFourCC(c.name)
	w.WriteU32LE(c.bodyLen)
	w.WriteFourCC(c.altName)
	for _, child := range c.children {
		child.appendTo(w, pad)
	}
}

func (c *Container) writeInto(dst []byte, pad byte) int {
	copy(dst[0:4], c.name[:])
	binary.PutU32LE(dst[4:8], c.bodyLen)
	copy(dst[8:12], c.altName[:])
	n := containerHeaderSize
	for _, child := range c.children {
		n += child.writeInto(dst[n:], pad)
	}
	return n
}
