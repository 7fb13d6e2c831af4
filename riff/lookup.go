package riff

import (
	"github.com/wippyai/riff-kit/errors"
)

// Child returns the direct child at position i. Indexes outside
// [0, Len()) fail with ErrIndexOutOfRange.
func (c *Container) Child(i int) (Chunk, error) {
	if i < 0 || i >= len(c.children) {
		return nil, errors.OutOfRange(i, len(c.children))
	}
	return c.children[i], nil
}

// Find scans the direct children in order and returns the first whose
// name equals key or, for container children, whose alt name equals it.
// Every container is named RIFF or LIST, so the alt-name match is what
// makes a nested container addressable by its form tag. A miss fails
// with ErrKeyNotFound.
func (c *Container) Find(key FourCC) (Chunk, error) {
	for _, child := range c.children {
		if child.Name() == key {
			return child, nil
		}
		if sub, ok := child.(*Container); ok && sub.altName == key {
			return child, nil
		}
	}
	return nil, errors.NotFound("chunk", key.String())
}
