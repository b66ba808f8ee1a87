// Package persistence stores array snapshots in a binary file format.
//
// A snapshot is a 64-byte little-endian header followed by the encoded item
// payload. The header records the codec that produced the payload, the
// compression applied to it, the item count and a CRC32 checksum, so a file
// is self-describing and corruption is detected before any item is decoded.
//
// Loading enforces the same bounds discipline as the in-memory types: a
// snapshot written for one domain size cannot be loaded into a domain of a
// different size.
package persistence
