// Package riffkit provides parsing and encoding of RIFF-style binary
// container formats.
//
// RIFF is the tagged, length-prefixed, recursively nestable chunk format
// used by WAV, AVI, WebP and related media containers. This library models
// a file as an immutable tree of chunks, parses such trees out of byte
// buffers, and serializes them back.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	riffkit/             Root package, documentation only
//	├── riff/            Chunk model, parser, serializer and lookup
//	│   └── internal/
//	│       └── binary/  Low-level byte reader/writer primitives
//	├── dump/            Human-readable chunk tree rendering
//	├── errors/          Structured error types shared across packages
//	├── cmd/riff         Command-line chunk inspector with a TUI browser
//	└── examples/        Runnable usage walkthroughs
//
// # Quick Start
//
// Parse a file and walk its chunks:
//
//	data, _ := os.ReadFile("song.wav")
//	root, err := riff.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	wave := root.(*riff.Container)
//	chunk, err := wave.Find(riff.MustFourCC("data"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	samples := chunk.(*riff.Leaf).Data()
//
// Build and encode a tree from scratch:
//
//	body, _ := riff.NewLeaf(riff.MustFourCC("data"), samples)
//	root, _ := riff.NewContainer(riff.KeywordRIFF, riff.MustFourCC("WAVE"),
//	    []riff.Chunk{body})
//	encoded := root.Encode()
//
// # Thread Safety
//
// Chunk trees are immutable after construction and safe for concurrent
// readers without synchronization. Parsing and encoding hold no shared
// state; independent calls never need coordination.
//
// # Memory Model
//
// Parsing is zero-copy: leaf payloads alias the input buffer. The buffer
// must stay alive and unmodified for as long as the parsed tree is used.
// Callers that need the tree to outlive the buffer should copy payloads
// before dropping the buffer.
package riffkit
