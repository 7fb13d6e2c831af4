package riff_test

import (
	"bytes"
	"testing"

	"github.com/wippyai/riff-kit/riff"
)

func TestParse_WaveScenario(t *testing.T) {
	data := []byte{
		'R', 'I', 'F', 'F',
		0x10, 0x00, 0x00, 0x00,
		'W', 'A', 'V', 'E',
		'd', 'a', 't', 'a',
		0x03, 0x00, 0x00, 0x00,
		0x01, 0x02, 0x03,
		0x00,
	}

	root, err := riff.Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if root.Size() != 24 {
		t.Errorf("root Size = %d, want 24", root.Size())
	}

	cont, ok := root.(*riff.Container)
	if !ok {
		t.Fatalf("root is %T, want *riff.Container", root)
	}
	if cont.Name() != riff.KeywordRIFF {
		t.Errorf("root name = %q, want \"RIFF\"", cont.Name())
	}
	if cont.AltName() != riff.MustFourCC("WAVE") {
		t.Errorf("root alt name = %q, want \"WAVE\"", cont.AltName())
	}
	if cont.Len() != 1 {
		t.Fatalf("root has %d children, want 1", cont.Len())
	}

	child, err := cont.Child(0)
	if err != nil {
		t.Fatalf("Child(0) failed: %v", err)
	}
	leaf, ok := child.(*riff.Leaf)
	if !ok {
		t.Fatalf("child is %T, want *riff.Leaf", child)
	}
	if leaf.Name() != riff.MustFourCC("data") {
		t.Errorf("leaf name = %q, want \"data\"", leaf.Name())
	}
	if !bytes.Equal(leaf.Data(), []byte{0x01, 0x02, 0x03}) {
		t.Errorf("leaf payload = % x, want 01 02 03", leaf.Data())
	}
}

func TestParse_RoundTrip(t *testing.T) {
	trees := []struct {
		name string
		root riff.Chunk
	}{
		{"leaf root", newLeaf(t, "data", []byte{0xDE, 0xAD, 0xBE, 0xEF})},
		{"odd leaf root", newLeaf(t, "data", []byte{0x01, 0x02, 0x03})},
		{"empty container", newContainer(t, "LIST", "INFO")},
		{"wave", newContainer(t, "RIFF", "WAVE",
			newLeaf(t, "fmt ", make([]byte, 16)),
			newLeaf(t, "data", []byte{0x0A, 0x0B, 0x0C, 0x0D, 0x0E}),
		)},
		{"avi shaped", newContainer(t, "RIFF", "AVI ",
			newContainer(t, "LIST", "hdrl",
				newLeaf(t, "avih", make([]byte, 12)),
				newContainer(t, "LIST", "strl",
					newLeaf(t, "strh", []byte{0x01, 0x02, 0x03}),
					newLeaf(t, "strf", nil),
				),
			),
			newContainer(t, "LIST", "movi", newLeaf(t, "00dc", []byte{0xFF})),
		)},
	}

	// The pad byte is filler: whatever value was written, parsing must
	// recover the identical tree.
	for _, pad := range []byte{0x00, 0x30, 0xFF} {
		for _, tt := range trees {
			t.Run(tt.name, func(t *testing.T) {
				dst := make([]byte, tt.root.Size())
				if _, err := tt.root.EncodeInto(dst, pad); err != nil {
					t.Fatalf("EncodeInto failed: %v", err)
				}

				parsed, err := riff.Parse(dst)
				if err != nil {
					t.Fatalf("Parse with pad %#x failed: %v", pad, err)
				}
				if !chunksEqual(parsed, tt.root) {
					t.Errorf("parsed tree differs from original (pad %#x)", pad)
				}
			})
		}
	}
}

func TestParse_TrailingBytesIgnored(t *testing.T) {
	root := newContainer(t, "RIFF", "WAVE", newLeaf(t, "data", []byte{0x01, 0x02}))

	data := append(root.Encode(), 0xCA, 0xFE, 0xBA, 0xBE)
	parsed, err := riff.Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !chunksEqual(parsed, root) {
		t.Error("trailing bytes changed the parsed tree")
	}
}

func TestParse_MissingRootPadAccepted(t *testing.T) {
	// An odd root chunk may arrive without its final pad byte; only the
	// declared payload has to be present.
	data := []byte{
		'd', 'a', 't', 'a',
		0x03, 0x00, 0x00, 0x00,
		0x01, 0x02, 0x03,
	}

	root, err := riff.Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	leaf, ok := root.(*riff.Leaf)
	if !ok {
		t.Fatalf("root is %T, want *riff.Leaf", root)
	}
	if !bytes.Equal(leaf.Data(), []byte{0x01, 0x02, 0x03}) {
		t.Errorf("leaf payload = % x, want 01 02 03", leaf.Data())
	}
}

func TestParse_EmptyContainer(t *testing.T) {
	data := []byte{
		'L', 'I', 'S', 'T',
		0x04, 0x00, 0x00, 0x00,
		'I', 'N', 'F', 'O',
	}

	root, err := riff.Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	cont, ok := root.(*riff.Container)
	if !ok {
		t.Fatalf("root is %T, want *riff.Container", root)
	}
	if cont.Len() != 0 {
		t.Errorf("container has %d children, want 0", cont.Len())
	}
}

func TestParse_NestedListNavigation(t *testing.T) {
	inner := newContainer(t, "LIST", "strl", newLeaf(t, "strh", []byte{0x10, 0x20}))
	outer := newContainer(t, "LIST", "hdrl", inner)

	parsed, err := riff.Parse(outer.Encode())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	cont, ok := parsed.(*riff.Container)
	if !ok {
		t.Fatalf("root is %T, want *riff.Container", parsed)
	}

	byIndex, err := cont.Child(0)
	if err != nil {
		t.Fatalf("Child(0) failed: %v", err)
	}
	byName, err := cont.Find(riff.MustFourCC("strl"))
	if err != nil {
		t.Fatalf("Find(\"strl\") failed: %v", err)
	}
	if byIndex != byName {
		t.Error("Child(0) and Find(\"strl\") returned different chunks")
	}
	if !chunksEqual(byIndex, inner) {
		t.Error("nested container does not match the original")
	}
}

func TestParse_PayloadAliasesInput(t *testing.T) {
	data := newLeaf(t, "data", []byte{0x01, 0x02, 0x03, 0x04}).Encode()

	root, err := riff.Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	leaf := root.(*riff.Leaf)

	// Leaf payloads are views into the parsed buffer, not copies.
	data[8] = 0x99
	if leaf.Data()[0] != 0x99 {
		t.Error("leaf payload does not alias the input buffer")
	}
}

// chunksEqual reports whether two trees have identical structure,
// names, and payloads.
func chunksEqual(a, b riff.Chunk) bool {
	switch av := a.(type) {
	case *riff.Leaf:
		bv, ok := b.(*riff.Leaf)
		return ok && av.Name() == bv.Name() && bytes.Equal(av.Data(), bv.Data())
	case *riff.Container:
		bv, ok := b.(*riff.Container)
		if !ok || av.Name() != bv.Name() || av.AltName() != bv.AltName() || av.Len() != bv.Len() {
			return false
		}
		for i := 0; i < av.Len(); i++ {
			ac, err := av.Child(i)
			if err != nil {
				return false
			}
			bc, err := bv.Child(i)
			if err != nil {
				return false
			}
			if !chunksEqual(ac, bc) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
