package pixclust

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want Algorithm
	}{
		{"kmeans", KMeans},
		{"DBSCAN", DBSCAN},
		{" meanshift ", MeanShift},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, must(ParseAlgorithm(got.String())))
		})
	}

	_, err := ParseAlgorithm("spectral")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func must(a Algorithm, err error) Algorithm {
	if err != nil {
		panic(err)
	}
	return a
}

func TestAlgorithmJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		A Algorithm `json:"a"`
	}{MeanShift})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"meanshift"}`, string(b))

	var v struct {
		A Algorithm `json:"a"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"dbscan"}`), &v))
	assert.Equal(t, DBSCAN, v.A)

	_, err = json.Marshal(Algorithm(42))
	assert.Error(t, err)
	assert.Equal(t, "Algorithm(42)", Algorithm(42).String())
}

func TestDefaultParams(t *testing.T) {
	assert.Equal(t, Params{Clusters: 5, Bandwidth: 1.0, Epsilon: 0.5, MinSamples: 5}, DefaultParams())
}
