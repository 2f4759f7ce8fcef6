package codec

import (
	"encoding/json"
	"errors"
	"fmt"
)

// JSON is the standard-library JSON codec.
//
// Use it when the reader of an envelope lives outside Go and only needs a
// portable header.
type JSON struct{}

// Marshal encodes the value to JSON. NaN and infinite floats fail with
// ErrNonFinite.
func (JSON) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if uv := (*json.UnsupportedValueError)(nil); errors.As(err, &uv) && isFloat(uv.Value) {
		return nil, fmt.Errorf("%w: %s", ErrNonFinite, uv.Str)
	}
	return b, err
}

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the header codec used when none is given.
var Default Codec = GoJSON{}
