package riff

import (
	"io"

	"github.com/wippyai/riff-kit/errors"
	"github.com/wippyai/riff-kit/riff/internal/binary"
)

// Chunk is one tagged, length-prefixed unit of a RIFF stream: either a
// Leaf carrying an opaque payload or a Container nesting further chunks.
// The variant is fixed at construction; no other implementations exist.
//
// Chunks are immutable. A tree built once, by Parse or by the
// constructors, can be shared between goroutines without synchronization.
type Chunk interface {
	// Name returns the 4-byte chunk tag.
	Name() FourCC

	// Size returns the full encoded size in bytes: header, payload, and
	// the padding byte when the payload length is odd.
	Size() uint32

	// Encode allocates and returns the encoded chunk, padded with
	// DefaultPad.
	Encode() []byte

	// EncodeInto writes the encoded chunk at dst[0] and returns the
	// number of bytes written, always exactly Size. A destination
	// shorter than Size fails with ErrBufferTooSmall before any byte
	// is written.
	EncodeInto(dst []byte, pad byte) (int, error)

	// EncodeTo streams the encoded chunk to w and returns the number of
	// bytes written. Sink failures surface as encode errors wrapping
	// the original.
	EncodeTo(w io.Writer, pad byte) (int64, error)

	// appendTo and writeInto seal the interface to the two variants in
	// this package.
	appendTo(w *binary.Writer, pad byte)
	writeInto(dst []byte, pad byte) int
}

// paddedSize is the total encoded size for a payload of bodyLen bytes:
// the 8-byte header, the payload, and one pad byte when the length is odd.
func paddedSize(bodyLen uint32) uint32 {
	return HeaderSize + bodyLen + (bodyLen & 1)
}

// Leaf is a chunk with an opaque payload.
type Leaf struct {
	name FourCC
	data []byte
}

// NewLeaf builds a leaf chunk. The name must not be a container keyword
// and the payload may not exceed MaxBodyLen. The payload is not copied:
// the leaf aliases data, so the caller must keep the backing buffer alive
// and unmodified for the life of the chunk.
func NewLeaf(name FourCC, data []byte) (*Leaf, error) {
	if name.IsContainerKeyword() {
		return nil, errors.InvalidChunk("leaf name %q is a container keyword", name)
	}
	if uint64(len(data)) > uint64(MaxBodyLen) {
		return nil, errors.InvalidChunk("payload of %d bytes exceeds the %d byte format limit", len(data), MaxBodyLen)
	}
	return &Leaf{name: name, data: data}, nil
}

// Name returns the chunk tag.
func (l *Leaf) Name() FourCC {
	return l.name
}

// Data returns the payload. The slice may alias the buffer the leaf was
// built or parsed from; treat it as read-only.
func (l *Leaf) Data() []byte {
	return l.data
}

// Size returns the encoded size, padding included.
func (l *Leaf) Size() uint32 {
	return paddedSize(uint32(len(l.data)))
}

// Container is a chunk holding an ordered list of child chunks plus a
// secondary form tag. Its declared length is the alt name plus the
// encoded sizes of all children; child sizes are always even, so a
// container never needs its own padding byte.
type Container struct {
	name     FourCC
	altName  FourCC
	children []Chunk
	bodyLen  uint32
}

// NewContainer builds a container chunk. The name must be one of the
// container keywords; the alt name may be any identifier. The child slice
// is copied so later mutation of the argument cannot reorder the tree,
// and the combined encoded size of the children may not exceed
// MaxBodyLen. The body length is computed here once, which keeps Size
// constant time at every level of the tree.
func NewContainer(name, altName FourCC, children []Chunk) (*Container, error) {
	if !name.IsContainerKeyword() {
		return nil, errors.InvalidChunk("container name %q is not a container keyword", name)
	}
	body := uint64(4)
	for i, c := range children {
		if c == nil {
			return nil, errors.InvalidChunk("child %d of container %q is nil", i, name)
		}
		body += uint64(c.Size())
	}
	if body > uint64(MaxBodyLen) {
		return nil, errors.InvalidChunk("combined child size of %d bytes exceeds the %d byte format limit", body, MaxBodyLen)
	}
	kids := make([]Chunk, len(children))
	copy(kids, children)
	return &Container{
		name:     name,
		altName:  altName,
		children: kids,
		bodyLen:  uint32(body),
	}, nil
}

// Name returns the chunk tag, always a container keyword.
func (c *Container) Name() FourCC {
	return c.name
}

// AltName returns the secondary form tag, e.g. WAVE for a wave file's
// root chunk.
func (c *Container) AltName() FourCC {
	return c.altName
}

// Len returns the number of direct children.
func (c *Container) Len() int {
	return len(c.children)
}

// Children returns the direct children in encoding order. The slice is a
// fresh copy on every call; the chunks themselves are shared.
func (c *Container) Children() []Chunk {
	out := make([]Chunk, len(c.children))
	copy(out, c.children)
	return out
}

// Size returns the encoded size of the container and all descendants.
func (c *Container) Size() uint32 {
	return paddedSize(c.bodyLen)
}
