package buffer

import "golang.org/x/text/encoding"

// Option configures a Buffer at creation time.
type Option func(*Buffer)

// WithLineEnding sets the line ending style used when the buffer is
// serialized back to text.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = le
	}
}

// WithEncoding sets the character encoding used to decode content read
// through NewBufferFromReader. The default is UTF-8 (no decoding).
func WithEncoding(enc encoding.Encoding) Option {
	return func(b *Buffer) {
		b.encoding = enc
	}
}
