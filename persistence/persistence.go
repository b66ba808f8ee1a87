package persistence

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/idxgo"
	"github.com/hupe1980/idxgo/codec"
)

type options struct {
	codec       codec.Codec
	compression CompressionType
}

// Option configures Save behavior. Load needs no options: the header tells
// it which codec and compression produced the file.
type Option func(*options)

// WithCodec configures the codec used to encode items.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures payload compression. Incompressible payloads
// are stored uncompressed regardless of the requested type.
func WithCompression(ct CompressionType) Option {
	return func(o *options) {
		o.compression = ct
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:       codec.Default,
		compression: CompressionNone,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// Save writes a snapshot of arr to w. The array must be fully sized for its
// domain; a zero-value array of a non-empty domain is rejected.
func Save[D idxgo.Domain, T any](w io.Writer, arr idxgo.Array[D, T], opts ...Option) error {
	o := applyOptions(opts)

	want := idxgo.Size[D]()
	if arr.Len() != want {
		return &ErrCountMismatch{Got: arr.Len(), Want: want}
	}

	name := o.codec.Name()
	var header FileHeader
	if len(name) == 0 || len(name) > len(header.CodecName) {
		return fmt.Errorf("codec name %q does not fit the %d-byte header field", name, len(header.CodecName))
	}

	raw, err := o.codec.Marshal(arr.Slice())
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}

	payload, compression, err := compress(raw, o.compression)
	if err != nil {
		return err
	}

	header.Magic = MagicNumber
	header.Version = Version
	copy(header.CodecName[:], name)
	header.Compression = uint8(compression)
	header.Count = uint64(want)
	header.RawLen = uint64(len(raw))
	header.PayloadLen = uint64(len(payload))
	header.Checksum = crc32.Checksum(payload, crcTable)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}

	return nil
}

// Load reads a snapshot from r and returns the restored array. The snapshot
// item count must match the size of D exactly.
func Load[D idxgo.Domain, T any](r io.Reader) (idxgo.Array[D, T], error) {
	var zero idxgo.Array[D, T]

	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return zero, fmt.Errorf("read header: %w", err)
	}
	if header.Magic != MagicNumber {
		return zero, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return zero, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, header.Version)
	}

	// Reject a foreign domain size before touching the payload.
	want := idxgo.Size[D]()
	if header.Count != uint64(want) {
		return zero, &ErrCountMismatch{Got: int(header.Count), Want: want}
	}

	name := string(bytes.TrimRight(header.CodecName[:], "\x00"))
	c, ok := codec.ByName(name)
	if !ok {
		return zero, &ErrUnknownCodec{Name: name}
	}

	payload := make([]byte, header.PayloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return zero, fmt.Errorf("read payload: %w", err)
	}

	if sum := crc32.Checksum(payload, crcTable); sum != header.Checksum {
		return zero, &ErrChecksumMismatch{Expected: header.Checksum, Actual: sum}
	}

	raw, err := decompress(payload, CompressionType(header.Compression), int(header.RawLen))
	if err != nil {
		return zero, err
	}

	var items []T
	if err := c.Unmarshal(raw, &items); err != nil {
		return zero, fmt.Errorf("decode items: %w", err)
	}
	if len(items) != want {
		return zero, &ErrCountMismatch{Got: len(items), Want: want}
	}

	return idxgo.Wrap[D](items), nil
}

// compress applies the requested compression. When compression does not pay
// for itself (ratio above 0.9 or incompressible input), the raw payload is
// stored and CompressionNone reported, so readers never pay decompression
// cost for nothing.
func compress(data []byte, ct CompressionType) ([]byte, CompressionType, error) {
	if ct == CompressionNone || len(data) == 0 {
		return data, CompressionNone, nil
	}

	var compressed []byte
	var err error

	switch ct {
	case CompressionLZ4:
		compressed, err = compressLZ4(data)
	case CompressionZSTD:
		compressed, err = compressZSTD(data)
	default:
		return nil, 0, &ErrUnknownCompression{Type: ct}
	}

	if err != nil {
		return nil, 0, err
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		return data, CompressionNone, nil
	}

	return compressed, ct, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if n == 0 {
		return nil, nil // incompressible
	}

	return compressed[:n], nil
}

func compressZSTD(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	defer enc.Close()

	return enc.EncodeAll(data, nil), nil
}

func decompress(payload []byte, ct CompressionType, rawLen int) ([]byte, error) {
	switch ct {
	case CompressionNone:
		return payload, nil

	case CompressionLZ4:
		result := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(payload, result)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		if n != rawLen {
			return nil, fmt.Errorf("lz4 decompress: got %d bytes, want %d", n, rawLen)
		}
		return result, nil

	case CompressionZSTD:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decoder: %w", err)
		}
		defer dec.Close()

		result, err := dec.DecodeAll(payload, make([]byte, 0, rawLen))
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		if len(result) != rawLen {
			return nil, fmt.Errorf("zstd decompress: got %d bytes, want %d", len(result), rawLen)
		}
		return result, nil

	default:
		return nil, &ErrUnknownCompression{Type: ct}
	}
}
