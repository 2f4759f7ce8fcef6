package pixclust

import (
	"errors"
	"fmt"

	"github.com/hupe1980/pixclust/codec"
	"github.com/hupe1980/pixclust/core"
)

var (
	// ErrInvalidParameter is returned for a malformed buffer or an out of
	// range algorithm parameter. Errors carrying it unwrap to a
	// *core.ParameterError naming the offending parameter.
	ErrInvalidParameter = core.ErrInvalidParameter

	// ErrUnknownAlgorithm is returned when an algorithm name cannot be parsed.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrCorruptSegmentation is returned when encoded segmentation data
	// cannot be decoded.
	ErrCorruptSegmentation = errors.New("corrupt segmentation")
)

// ErrLabelCount indicates a label sequence whose length does not match the
// image it describes.
type ErrLabelCount struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrLabelCount) Error() string {
	return fmt.Sprintf("label count mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrLabelCount) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Parameter errors already unwrap to ErrInvalidParameter.
	var pe *core.ParameterError
	if errors.As(err, &pe) {
		return err
	}

	// Envelope decoding normalization.
	if errors.Is(err, codec.ErrBadEnvelope) ||
		errors.Is(err, codec.ErrCorruptBlock) ||
		errors.Is(err, codec.ErrUnknownCodec) ||
		errors.Is(err, codec.ErrUnknownCompression) {
		return fmt.Errorf("%w: %w", ErrCorruptSegmentation, err)
	}

	return err
}
