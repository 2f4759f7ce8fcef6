package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Envelope layout:
//
//	magic      [4]byte  "PXCL"
//	version    uint8
//	compress   uint8    CompressionType of the label block
//	nameLen    uint8
//	name       [nameLen]byte  codec name of the header
//	count      uint32   number of labels
//	headerLen  uint32
//	header     [headerLen]byte
//	labels     label block (see EncodeLabels)
const envelopeVersion = 1

var envelopeMagic = [4]byte{'P', 'X', 'C', 'L'}

var (
	// ErrBadEnvelope is returned for data that is not a valid envelope.
	ErrBadEnvelope = errors.New("invalid envelope")
	// ErrUnknownCodec is returned when the envelope names an unknown codec.
	ErrUnknownCodec = errors.New("unknown codec")
)

// EncodeEnvelope writes header with c and labels as a block compressed with ct.
func EncodeEnvelope(c Codec, ct CompressionType, header any, labels []int) ([]byte, error) {
	if c == nil {
		c = Default
	}
	name := c.Name()
	if len(name) > 255 {
		return nil, fmt.Errorf("codec name too long: %q", name)
	}

	hdr, err := c.Marshal(header)
	if err != nil {
		return nil, fmt.Errorf("marshal header with %s: %w", name, err)
	}
	block, err := EncodeLabels(labels, ct)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 4+3+len(name)+8+len(hdr)+len(block))
	out = append(out, envelopeMagic[:]...)
	out = append(out, envelopeVersion, byte(ct), byte(len(name)))
	out = append(out, name...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(labels)))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(hdr)))
	out = append(out, hdr...)
	out = append(out, block...)
	return out, nil
}

// DecodeEnvelope reads an envelope, unmarshals its header into header and
// returns the labels.
func DecodeEnvelope(data []byte, header any) ([]int, error) {
	if len(data) < 7 || [4]byte(data[:4]) != envelopeMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrBadEnvelope)
	}
	if data[4] != envelopeVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadEnvelope, data[4])
	}
	ct := CompressionType(data[5])
	nameLen := int(data[6])
	rest := data[7:]

	if len(rest) < nameLen+8 {
		return nil, fmt.Errorf("%w: truncated", ErrBadEnvelope)
	}
	name := string(rest[:nameLen])
	rest = rest[nameLen:]

	c, ok := ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	count := int(binary.LittleEndian.Uint32(rest[0:]))
	hdrLen := int(binary.LittleEndian.Uint32(rest[4:]))
	rest = rest[8:]
	if len(rest) < hdrLen {
		return nil, fmt.Errorf("%w: truncated header", ErrBadEnvelope)
	}

	if err := c.Unmarshal(rest[:hdrLen], header); err != nil {
		return nil, fmt.Errorf("unmarshal header with %s: %w", name, err)
	}

	return DecodeLabels(rest[hdrLen:], ct, count)
}
