package codec

import (
	"errors"
	"fmt"

	gojson "github.com/goccy/go-json"
)

// GoJSON is a JSON codec backed by github.com/goccy/go-json.
//
// Its output is interchangeable with JSON; it is the default because
// centroid lists and reports are float-heavy and encode faster with it.
type GoJSON struct{}

// Marshal encodes the value to JSON. NaN and infinite floats fail with
// ErrNonFinite, exactly as with JSON.
func (GoJSON) Marshal(v any) ([]byte, error) {
	b, err := gojson.Marshal(v)
	if uv := (*gojson.UnsupportedValueError)(nil); errors.As(err, &uv) && isFloat(uv.Value) {
		return nil, fmt.Errorf("%w: %s", ErrNonFinite, uv.Str)
	}
	return b, err
}

// Unmarshal decodes the JSON data into v.
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

// Name returns the unique name of the codec ("go-json").
func (GoJSON) Name() string { return "go-json" }
