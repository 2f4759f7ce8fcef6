package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType defines the compression algorithm used for label blocks.
type CompressionType uint8

const (
	// CompressionNone stores labels as plain varints.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD uses ZSTD (better ratio on large uniform regions).
	CompressionZSTD CompressionType = 2
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

var (
	// ErrCorruptBlock is returned when a label block cannot be decoded.
	ErrCorruptBlock = errors.New("corrupt label block")
	// ErrUnknownCompression is returned for an unsupported CompressionType.
	ErrUnknownCompression = errors.New("unknown compression type")
)

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	// A block header cannot describe more than MaxUint32 raw bytes.
	dec, _ := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(math.MaxUint32))
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Block format: [UncompressedSize uint32][CompressedSize uint32][Data...]
// CompressedSize == 0 means Data is stored uncompressed.
const blockHeaderSize = 8

// EncodeLabels packs labels as zigzag varints and compresses the result.
// If compression saves less than 10%, the block is stored uncompressed.
func EncodeLabels(labels []int, ct CompressionType) ([]byte, error) {
	raw := make([]byte, 0, len(labels))
	for _, l := range labels {
		raw = binary.AppendVarint(raw, int64(l))
	}

	var compressed []byte
	switch ct {
	case CompressionNone:
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := lz4.CompressBlock(raw, buf, nil)
		if err != nil {
			return nil, err
		}
		compressed = buf[:n]
	case CompressionZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(raw, nil)
		putZstdEncoder(enc)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCompression, ct)
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(raw))*0.9 {
		out := make([]byte, blockHeaderSize+len(raw))
		binary.LittleEndian.PutUint32(out[0:], uint32(len(raw)))
		binary.LittleEndian.PutUint32(out[4:], 0)
		copy(out[blockHeaderSize:], raw)
		return out, nil
	}

	out := make([]byte, blockHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(out[0:], uint32(len(raw)))
	binary.LittleEndian.PutUint32(out[4:], uint32(len(compressed)))
	copy(out[blockHeaderSize:], compressed)
	return out, nil
}

// DecodeLabels reverses EncodeLabels. count is the expected number of labels.
// Sizes read from block are checked against count and the block length
// before anything is allocated.
func DecodeLabels(block []byte, ct CompressionType, count int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative label count %d", ErrCorruptBlock, count)
	}

	raw, err := decompress(block, ct, int64(count)*binary.MaxVarintLen64)
	if err != nil {
		return nil, err
	}
	// Every varint occupies at least one byte.
	if count > len(raw) {
		return nil, fmt.Errorf("%w: %d labels cannot fit in %d bytes", ErrCorruptBlock, count, len(raw))
	}

	labels := make([]int, 0, min(count, len(raw)))
	for len(raw) > 0 {
		v, n := binary.Varint(raw)
		if n <= 0 {
			return nil, ErrCorruptBlock
		}
		labels = append(labels, int(v))
		raw = raw[n:]
	}
	if len(labels) != count {
		return nil, fmt.Errorf("%w: expected %d labels, got %d", ErrCorruptBlock, count, len(labels))
	}
	return labels, nil
}

// lz4MaxRatio bounds how far one compressed LZ4 byte can expand.
const lz4MaxRatio = 255

func decompress(block []byte, ct CompressionType, maxRaw int64) ([]byte, error) {
	if len(block) < blockHeaderSize {
		return nil, fmt.Errorf("%w: block too small for header", ErrCorruptBlock)
	}

	uncompressedSize := binary.LittleEndian.Uint32(block[0:])
	compressedSize := binary.LittleEndian.Uint32(block[4:])

	if int64(uncompressedSize) > maxRaw {
		return nil, fmt.Errorf("%w: uncompressed size %d exceeds %d", ErrCorruptBlock, uncompressedSize, maxRaw)
	}

	if compressedSize == 0 {
		if int64(len(block)) < blockHeaderSize+int64(uncompressedSize) {
			return nil, fmt.Errorf("%w: block data too small", ErrCorruptBlock)
		}
		return block[blockHeaderSize : blockHeaderSize+uncompressedSize], nil
	}

	if int64(len(block)) < blockHeaderSize+int64(compressedSize) {
		return nil, fmt.Errorf("%w: compressed block data too small", ErrCorruptBlock)
	}
	data := block[blockHeaderSize : blockHeaderSize+compressedSize]

	switch ct {
	case CompressionLZ4:
		if int64(uncompressedSize) > int64(compressedSize)*lz4MaxRatio {
			return nil, fmt.Errorf("%w: lz4 size %d out of range", ErrCorruptBlock, uncompressedSize)
		}
		out := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(data, out)
		if err != nil {
			return nil, err
		}
		if uint32(n) != uncompressedSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptBlock)
		}
		return out, nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		// The frame may still lie about its size; grow from the input size.
		out, err := dec.DecodeAll(data, make([]byte, 0, min(int(uncompressedSize), 4*len(data))))
		if err != nil {
			return nil, err
		}
		if uint32(len(out)) != uncompressedSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptBlock)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCompression, ct)
	}
}
