// Package musicmap renders segment plans into iMUSE map documents.
//
// The map is a fixed six-block text layout (format header, intro region,
// loop re-entry marker, loop region, jump directive, outro region, stop
// marker) consumed verbatim by the downstream compressor; block order and
// field order must not change.
package musicmap
