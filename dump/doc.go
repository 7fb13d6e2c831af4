// Package dump renders chunk trees as human-readable text.
//
// Each chunk occupies one line, indented two spaces per nesting level.
// Containers show their alt name and child count, leaves a short hex
// digest of their payload:
//
//	RIFF [WAVE] 24B, 1 child
//	  data 12B 010203
//
// Use Tree for a string or WriteTree to stream to a writer.
package dump
