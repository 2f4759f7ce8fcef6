// Package codec encodes segmentation results for transport.
//
// An envelope carries a self-describing header encoded with a Codec and the
// label sequence as a compressed binary block. The codec name is stored in
// the envelope so a reader can select the matching Codec on decode.
package codec

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNonFinite is returned when a header holds a NaN or infinite number,
// such as a centroid computed from an empty group. JSON cannot represent
// either, so such a header would not decode to the value it was built from.
var ErrNonFinite = errors.New("header holds a non-finite number")

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// Envelopes store the codec name of their header, and decoding selects the
// codec through this function.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

func isFloat(v reflect.Value) bool {
	return v.IsValid() && (v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64)
}
