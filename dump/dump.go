package dump

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"code.cloudfoundry.org/bytefmt"

	"github.com/wippyai/riff-kit/riff"
)

// previewBytes caps the payload digest shown on leaf lines.
const previewBytes = 8

// Tree renders the chunk tree as an indented multi-line string.
func Tree(c riff.Chunk) string {
	var sb strings.Builder
	writeChunk(&sb, c, 0)
	return sb.String()
}

// WriteTree renders the chunk tree to w, one chunk per line.
func WriteTree(w io.Writer, c riff.Chunk) error {
	return writeChunk(w, c, 0)
}

func writeChunk(w io.Writer, c riff.Chunk, depth int) error {
	indent := strings.Repeat("  ", depth)
	size := bytefmt.ByteSize(uint64(c.Size()))

	switch v := c.(type) {
	case *riff.Container:
		line := fmt.Sprintf("%s%s [%s] %s, %s\n", indent, v.Name(), v.AltName(), size, countChildren(v.Len()))
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
		for _, child := range v.Children() {
			if err := writeChunk(w, child, depth+1); err != nil {
				return err
			}
		}
		return nil
	case *riff.Leaf:
		line := fmt.Sprintf("%s%s %s %s\n", indent, v.Name(), size, digest(v.Data()))
		_, err := io.WriteString(w, line)
		return err
	default:
		_, err := fmt.Fprintf(w, "%s%s %s\n", indent, c.Name(), size)
		return err
	}
}

func countChildren(n int) string {
	if n == 1 {
		return "1 child"
	}
	return fmt.Sprintf("%d children", n)
}

func digest(data []byte) string {
	switch {
	case len(data) == 0:
		return "(empty)"
	case len(data) <= previewBytes:
		return hex.EncodeToString(data)
	default:
		return hex.EncodeToString(data[:previewBytes]) + ".."
	}
}
