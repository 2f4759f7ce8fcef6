package pixclust

import (
	"fmt"
	"strings"
)

// Algorithm selects a clustering method.
type Algorithm uint8

const (
	// KMeans partitions pixels into exactly k color clusters.
	KMeans Algorithm = iota
	// DBSCAN groups pixels by color density and may leave pixels as noise.
	DBSCAN
	// MeanShift finds color modes; the number of clusters is discovered.
	MeanShift
)

// String returns the canonical algorithm name.
func (a Algorithm) String() string {
	switch a {
	case KMeans:
		return "kmeans"
	case DBSCAN:
		return "dbscan"
	case MeanShift:
		return "meanshift"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// ParseAlgorithm parses a canonical algorithm name, case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kmeans":
		return KMeans, nil
	case "dbscan":
		return DBSCAN, nil
	case "meanshift":
		return MeanShift, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if a > MeanShift {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Params carries the user-facing parameters of all algorithms. Each
// algorithm reads only its own fields.
type Params struct {
	// Clusters is k for KMeans.
	Clusters int `json:"clusters"`
	// Bandwidth scales the MeanShift window and merge radius.
	Bandwidth float64 `json:"bandwidth"`
	// Epsilon is the DBSCAN neighborhood radius in units of 100 color steps.
	Epsilon float64 `json:"epsilon"`
	// MinSamples is the DBSCAN core point threshold.
	MinSamples int `json:"min_samples"`
}

// DefaultParams returns the default parameter set.
func DefaultParams() Params {
	return Params{
		Clusters:   5,
		Bandwidth:  1.0,
		Epsilon:    0.5,
		MinSamples: 5,
	}
}
