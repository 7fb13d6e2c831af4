package riff

// Container keywords. A chunk named with either of these nests further
// chunks; any other name marks an opaque leaf.
var (
	// KeywordRIFF tags the top-level container of a RIFF file.
	KeywordRIFF = FourCC{'R', 'I', 'F', 'F'}

	// KeywordLIST tags a nested container.
	KeywordLIST = FourCC{'L', 'I', 'S', 'T'}
)

// Encoded layout dimensions. Every chunk opens with a 4-byte name and a
// little-endian uint32 length covering the payload only; a container
// payload additionally opens with a 4-byte alt name.
const (
	// HeaderSize is the fixed chunk prefix: name plus declared length.
	HeaderSize = 8

	// containerHeaderSize also counts the alt name that opens a
	// container payload.
	containerHeaderSize = HeaderSize + 4

	// MaxBodyLen is the largest declared length whose total encoded
	// size, padding included, still fits in uint32.
	MaxBodyLen uint32 = 1<<32 - 10

	// DefaultPad is the padding byte Encode appends after odd-length
	// payloads. Padding carries no meaning and any value round-trips
	// to the same tree.
	DefaultPad byte = 0x00
)
