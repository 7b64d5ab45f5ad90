// Package buffer provides the line-addressable text buffer the editor
// core operates on.
//
// The buffer stores text as an ordered sequence of lines and exposes
// the surface the AGS engine needs: line retrieval, span replacement
// within a line, and full-text access. Every mutation produces a new
// revision ID so consumers can detect staleness without diffing
// content.
//
// Line endings are normalized on load and re-applied by Text. Legacy
// single-byte encodings (common for AGS files exported from Windows
// tooling) can be decoded at load time via WithEncoding.
//
// All methods are safe for concurrent use, although the engine drives
// the buffer from a single event loop.
package buffer
