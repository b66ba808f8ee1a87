package persistence

import (
	"errors"
	"fmt"
	"hash/crc32"
)

const (
	// MagicNumber identifies idxgo snapshot files (ASCII: "IDX0").
	MagicNumber = 0x49445830
	// Version is the current snapshot format version (v1.0.0).
	Version = 0x00010000
)

// CompressionType selects the payload compression algorithm.
type CompressionType uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 block compression (fast, moderate ratio).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD uses ZSTD compression (slower, better ratio).
	CompressionZSTD CompressionType = 2
)

var (
	ErrInvalidMagic   = errors.New("invalid magic number")
	ErrInvalidVersion = errors.New("unsupported version")
)

// crcTable uses the Castagnoli polynomial, which is hardware-accelerated on
// modern CPUs. CRC32 detects accidental corruption only; it is not a defense
// against tampering.
var crcTable = crc32.MakeTable(crc32.Castagnoli)

// FileHeader is the 64-byte header at the start of every snapshot file.
// All multi-byte fields are little-endian.
type FileHeader struct {
	Magic       uint32  // 0x49445830 ("IDX0")
	Version     uint32  // File format version
	CodecName   [8]byte // Zero-padded codec name, e.g. "json"
	Compression uint8   // CompressionType of the payload
	Padding1    [7]byte
	Count       uint64 // Number of items in the snapshot
	RawLen      uint64 // Encoded payload size before compression
	PayloadLen  uint64 // Payload size as stored in the file
	Checksum    uint32 // CRC32 (Castagnoli) of the stored payload
	Padding2    [4]byte
	Reserved    [8]byte // Future use
}

// ErrCountMismatch is returned when a snapshot holds a different number of
// items than the target domain admits.
type ErrCountMismatch struct {
	Got  int
	Want int
}

func (e *ErrCountMismatch) Error() string {
	return fmt.Sprintf("snapshot holds %d items, domain expects %d", e.Got, e.Want)
}

// ErrChecksumMismatch is returned when the stored payload fails checksum
// verification.
type ErrChecksumMismatch struct {
	Expected uint32
	Actual   uint32
}

func (e *ErrChecksumMismatch) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

// ErrUnknownCodec is returned when a snapshot header names a codec this
// build does not provide.
type ErrUnknownCodec struct {
	Name string
}

func (e *ErrUnknownCodec) Error() string {
	return fmt.Sprintf("unknown codec %q", e.Name)
}

// ErrUnknownCompression is returned when a snapshot header carries a
// compression type this build does not provide.
type ErrUnknownCompression struct {
	Type CompressionType
}

func (e *ErrUnknownCompression) Error() string {
	return fmt.Sprintf("unknown compression type %d", uint8(e.Type))
}
