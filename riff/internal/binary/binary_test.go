package binary

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestReader_ReadU32LE(t *testing.T) {
	tests := []struct {
		name    string
		encoded []byte
		want    uint32
	}{
		{"zero", []byte{0x00, 0x00, 0x00, 0x00}, 0},
		{"small", []byte{0x10, 0x00, 0x00, 0x00}, 16},
		{"byte order", []byte{0x78, 0x56, 0x34, 0x12}, 0x12345678},
		{"max", []byte{0xFF, 0xFF, 0xFF, 0xFF}, 4294967295},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(tt.encoded)
			got, err := r.ReadU32LE()
			if err != nil {
				t.Fatalf("ReadU32LE failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadU32LE = %d, want %d", got, tt.want)
			}
			if r.Position() != 4 {
				t.Errorf("Position = %d, want 4", r.Position())
			}
		})
	}
}

func TestReader_Sequence(t *testing.T) {
	data := []byte{
		'd', 'a', 't', 'a', // identifier
		0x03, 0x00, 0x00, 0x00, // length = 3
		0x01, 0x02, 0x03, // payload
	}
	r := NewReader(data)

	id, err := r.ReadFourCC()
	if err != nil {
		t.Fatalf("ReadFourCC failed: %v", err)
	}
	if id != [4]byte{'d', 'a', 't', 'a'} {
		t.Errorf("ReadFourCC = %q, want \"data\"", id[:])
	}

	length, err := r.ReadU32LE()
	if err != nil {
		t.Fatalf("ReadU32LE failed: %v", err)
	}
	if length != 3 {
		t.Errorf("length = %d, want 3", length)
	}

	payload, err := r.ReadBytes(int(length))
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if !bytes.Equal(payload, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("payload = %v, want [1 2 3]", payload)
	}

	if r.Position() != len(data) {
		t.Errorf("Position = %d, want %d", r.Position(), len(data))
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", r.Remaining())
	}
}

func TestReader_ShortReads(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		read func(r *Reader) error
	}{
		{"fourcc from empty", nil, func(r *Reader) error {
			_, err := r.ReadFourCC()
			return err
		}},
		{"fourcc from 3 bytes", []byte{'R', 'I', 'F'}, func(r *Reader) error {
			_, err := r.ReadFourCC()
			return err
		}},
		{"u32 from 2 bytes", []byte{0x01, 0x02}, func(r *Reader) error {
			_, err := r.ReadU32LE()
			return err
		}},
		{"bytes past end", []byte{0x01}, func(r *Reader) error {
			_, err := r.ReadBytes(2)
			return err
		}},
		{"negative count", []byte{0x01}, func(r *Reader) error {
			_, err := r.ReadBytes(-1)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(tt.data)
			if err := tt.read(r); !errors.Is(err, io.ErrUnexpectedEOF) {
				t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
			}
			if r.Position() != 0 {
				t.Errorf("failed read moved position to %d", r.Position())
			}
		})
	}
}

func TestReader_ReadBytesAliasesView(t *testing.T) {
	data := []byte{0xAA, 0xBB, 0xCC}
	r := NewReader(data)

	got, err := r.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}

	data[1] = 0x00
	if got[1] != 0x00 {
		t.Error("ReadBytes copied the view instead of aliasing it")
	}
}

func TestWriter(t *testing.T) {
	w := NewWriter()
	w.WriteFourCC([4]byte{'d', 'a', 't', 'a'})
	w.WriteU32LE(3)
	w.WriteBytes([]byte{0x01, 0x02, 0x03})
	w.Byte(0x00)

	want := []byte{
		'd', 'a', 't', 'a',
		0x03, 0x00, 0x00, 0x00,
		0x01, 0x02, 0x03,
		0x00,
	}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("Bytes = %v, want %v", w.Bytes(), want)
	}
	if w.Len() != len(want) {
		t.Errorf("Len = %d, want %d", w.Len(), len(want))
	}
}

func TestWriterReaderRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteFourCC([4]byte{'R', 'I', 'F', 'F'})
	w.WriteU32LE(0xDEADBEEF)

	r := NewReader(w.Bytes())
	id, err := r.ReadFourCC()
	if err != nil {
		t.Fatalf("ReadFourCC failed: %v", err)
	}
	if id != [4]byte{'R', 'I', 'F', 'F'} {
		t.Errorf("ReadFourCC = %q, want \"RIFF\"", id[:])
	}
	v, err := r.ReadU32LE()
	if err != nil {
		t.Fatalf("ReadU32LE failed: %v", err)
	}
	if v != 0xDEADBEEF {
		t.Errorf("ReadU32LE = %#x, want 0xdeadbeef", v)
	}
}

func TestPutU32LE(t *testing.T) {
	dst := make([]byte, 4)
	PutU32LE(dst, 0x12345678)
	want := []byte{0x78, 0x56, 0x34, 0x12}
	if !bytes.Equal(dst, want) {
		t.Errorf("PutU32LE wrote %v, want %v", dst, want)
	}
}
