package riff

import (
	"go.uber.org/zap"

	"github.com/wippyai/riff-kit/errors"
	"github.com/wippyai/riff-kit/riff/internal/binary"
)

// Parse reads exactly one chunk starting at data[0] and returns its tree.
// Bytes past the root chunk's extent are ignored.
//
// Parsing is zero-copy: leaf payloads alias data, so the buffer must stay
// alive and unmodified for as long as the tree is used. The buffer itself
// is never written to.
func Parse(data []byte) (Chunk, error) {
	root, err := parseChunk(data, 0, nil)
	if err != nil {
		return nil, err
	}
	if extra := int64(len(data)) - int64(root.Size()); extra > 0 {
		Logger().Debug("ignoring trailing bytes after root chunk",
			zap.String("chunk", root.Name().String()),
			zap.Int64("bytes", extra))
	}
	return root, nil
}

// parseChunk decodes the chunk opening at view[0]. The view ends at the
// enclosing payload's end, so a child can never read past its parent.
// off is the view's absolute position in the originally parsed buffer and
// path holds the enclosing chunk names; both only feed error reports.
func parseChunk(view []byte, off int64, path []string) (Chunk, error) {
	r := binary.NewReader(view)

	rawName, err := r.ReadFourCC()
	if err != nil {
		return nil, errors.Truncated(path, off, "chunk header needs %d bytes, have %d", HeaderSize, len(view))
	}
	name := FourCC(rawName)

	declared, err := r.ReadU32LE()
	if err != nil {
		return nil, errors.Truncated(path, off, "chunk header needs %d bytes, have %d", HeaderSize, len(view))
	}
	if declared > MaxBodyLen {
		return nil, errors.InvalidLength(path, off, declared, MaxBodyLen)
	}
	if uint64(len(view)) < uint64(HeaderSize)+uint64(declared) {
		return nil, errors.Truncated(path, off, "chunk %q declares %d payload bytes, only %d available",
			name, declared, len(view)-HeaderSize)
	}

	// The padding byte after an odd payload sits outside the declared
	// extent and is not required to be present; the cursor arithmetic
	// below accounts for it between siblings.
	end := HeaderSize + int(declared)

	if !name.IsContainerKeyword() {
		payload, err := r.ReadBytes(int(declared))
		if err != nil {
			return nil, errors.Truncated(path, off, "chunk %q payload: %v", name, err)
		}
		return NewLeaf(name, payload)
	}

	if declared < 4 {
		return nil, errors.Truncated(path, off, "container %q declares %d payload bytes, needs at least 4 for the alt name",
			name, declared)
	}
	rawAlt, err := r.ReadFourCC()
	if err != nil {
		return nil, errors.Truncated(path, off, "container %q alt name: %v", name, err)
	}

	childPath := append(path, name.String())
	var children []Chunk
	cur := containerHeaderSize
	for cur < end {
		child, err := parseChunk(view[cur:end], off+int64(cur), childPath)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
		cur += int(child.Size())
	}
	if cur != end {
		return nil, errors.Truncated(path, off, "children of %q overrun its declared length by %d bytes",
			name, cur-end)
	}

	return NewContainer(name, FourCC(rawAlt), children)
}
