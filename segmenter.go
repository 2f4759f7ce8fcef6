package pixclust

import (
	"context"
	"errors"
	"time"

	"github.com/hupe1980/pixclust/core"
	"github.com/hupe1980/pixclust/distance"
	"github.com/hupe1980/pixclust/internal/assign"
	"github.com/hupe1980/pixclust/internal/dbscan"
	"github.com/hupe1980/pixclust/internal/kmeans"
	"github.com/hupe1980/pixclust/internal/meanshift"
	"github.com/hupe1980/pixclust/internal/sampler"
	"github.com/hupe1980/pixclust/mask"
	"github.com/hupe1980/pixclust/metric"
	"github.com/hupe1980/pixclust/palette"
	"github.com/hupe1980/pixclust/resource"
	"github.com/hupe1980/pixclust/util"
)

const (
	// DBSCANSampleSize caps the DBSCAN sample.
	DBSCANSampleSize = 2000
	// MeanShiftSampleSize caps the mean shift sample.
	MeanShiftSampleSize = 1000
	// EpsilonScale converts a DBSCAN epsilon to color distance units.
	EpsilonScale = 100.0
)

// Segmenter runs clustering algorithms over pixel buffers.
// It is safe for concurrent use.
type Segmenter struct {
	opts   options
	shared *util.RNG // non-nil with WithSharedRNG
}

// New creates a Segmenter.
func New(optFns ...Option) *Segmenter {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	s := &Segmenter{opts: o}
	if o.sharedRNG {
		s.shared = util.NewSharedRNG(o.seed)
	}
	return s
}

// rng returns the stream for one top-level call.
func (s *Segmenter) rng() *util.RNG {
	if s.shared != nil {
		return s.shared
	}
	return util.NewRNG(s.opts.seed)
}

// KMeans partitions buf into exactly k clusters. k must lie in
// [1, buf.Len()].
func (s *Segmenter) KMeans(ctx context.Context, buf *core.Buffer, k int) (*core.Result, error) {
	return s.run(ctx, KMeans, buf, func() error {
		if k < 1 || k > buf.Len() {
			return core.NewParameterError("k", k)
		}
		return nil
	}, func(ctx context.Context) (*core.Result, error) {
		return s.kmeans(ctx, buf, k)
	})
}

// DBSCAN clusters buf by color density. Pixels farther than epsilon*100
// from every cluster centroid are labeled core.Noise.
func (s *Segmenter) DBSCAN(ctx context.Context, buf *core.Buffer, epsilon float64, minSamples int) (*core.Result, error) {
	return s.run(ctx, DBSCAN, buf, func() error {
		if !(epsilon > 0) {
			return core.NewParameterError("epsilon", epsilon)
		}
		if minSamples <= 0 {
			return core.NewParameterError("minSamples", minSamples)
		}
		return nil
	}, func(ctx context.Context) (*core.Result, error) {
		return s.dbscan(ctx, buf, epsilon, minSamples)
	})
}

// MeanShift clusters buf around discovered color modes. Every pixel is
// assigned to its nearest mode.
func (s *Segmenter) MeanShift(ctx context.Context, buf *core.Buffer, bandwidth float64) (*core.Result, error) {
	return s.run(ctx, MeanShift, buf, func() error {
		if !(bandwidth > 0) {
			return core.NewParameterError("bandwidth", bandwidth)
		}
		return nil
	}, func(ctx context.Context) (*core.Result, error) {
		return s.meanShift(ctx, buf, bandwidth)
	})
}

// Evaluate computes the quality report of res over buf.
func (s *Segmenter) Evaluate(ctx context.Context, buf *core.Buffer, res *core.Result) metric.Report {
	start := time.Now()
	r := metric.Evaluate(buf, res)
	s.opts.metricsCollector.RecordEvaluate(time.Since(start))
	s.opts.logger.LogEvaluate(ctx, r)
	return r
}

// Request describes one segmentation.
type Request struct {
	Buffer    *core.Buffer
	Algorithm Algorithm
	Params    Params
}

// Segment runs req.Algorithm with its parameters and bundles the result with
// its quality report, display palette and per-cluster summaries.
func (s *Segmenter) Segment(ctx context.Context, req Request) (*Segmentation, error) {
	var (
		res *core.Result
		err error
	)

	switch req.Algorithm {
	case KMeans:
		res, err = s.KMeans(ctx, req.Buffer, req.Params.Clusters)
	case DBSCAN:
		res, err = s.DBSCAN(ctx, req.Buffer, req.Params.Epsilon, req.Params.MinSamples)
	case MeanShift:
		res, err = s.MeanShift(ctx, req.Buffer, req.Params.Bandwidth)
	default:
		return nil, core.NewParameterError("algorithm", req.Algorithm)
	}
	if err != nil {
		return nil, err
	}

	report := s.Evaluate(ctx, req.Buffer, res)
	return newSegmentation(req, res, report), nil
}

func newSegmentation(req Request, res *core.Result, report metric.Report) *Segmentation {
	colors := palette.Generate(len(res.Centroids))
	masks := mask.Build(res.Labels)

	return &Segmentation{
		Algorithm: req.Algorithm,
		Params:    req.Params,
		Width:     req.Buffer.Width,
		Height:    req.Buffer.Height,
		Result:    res,
		Report:    report,
		Palette:   colors,
		Clusters:  mask.Summaries(masks, res.Centroids, colors),
		masks:     masks,
	}
}

// run validates, admits, times, logs and records one clustering call.
// Nothing is computed unless validation passes.
func (s *Segmenter) run(
	ctx context.Context,
	alg Algorithm,
	buf *core.Buffer,
	validate func() error,
	compute func(context.Context) (*core.Result, error),
) (*core.Result, error) {
	start := time.Now()

	finish := func(res *core.Result, err error) (*core.Result, error) {
		err = translateError(err)
		pixels, clusters := 0, 0
		if buf != nil {
			pixels = buf.Len()
		}
		if res != nil {
			clusters = len(res.Centroids)
		}
		s.opts.logger.LogSegment(ctx, alg, pixels, clusters, err)
		s.opts.metricsCollector.RecordSegment(alg, time.Since(start), err)
		if err != nil {
			return nil, err
		}
		return res, nil
	}

	if err := buf.Validate(); err != nil {
		return finish(nil, err)
	}
	if err := validate(); err != nil {
		return finish(nil, err)
	}

	bytes := resource.LabelBytes(buf.Len())
	if err := s.admit(ctx, bytes); err != nil {
		s.opts.logger.LogAdmission(ctx, alg, err)
		return finish(nil, err)
	}
	defer s.opts.controller.Done(bytes)

	return finish(compute(ctx))
}

func (s *Segmenter) admit(ctx context.Context, bytes int64) error {
	if s.opts.failFast {
		return s.opts.controller.TryAdmit(bytes)
	}
	return s.opts.controller.Admit(ctx, bytes)
}

func (s *Segmenter) assignConfig(gate float64) assign.Config {
	return assign.Config{Gate: gate, Workers: s.opts.parallelism, Metric: distance.MetricL2}
}

func (s *Segmenter) kmeans(ctx context.Context, buf *core.Buffer, k int) (*core.Result, error) {
	total := buf.Len()
	points := buf.Colors(sampler.Strided(total, sampler.Stride(total)))

	model, err := kmeans.TrainKMeans(ctx, points, k, s.rng(), kmeans.DefaultConfig())
	if err != nil {
		return nil, err
	}

	centroids := model.Centroids.Colors()
	labels, err := assign.Nearest(ctx, buf, centroids, s.assignConfig(0))
	if err != nil {
		return nil, err
	}
	return &core.Result{Labels: labels, Centroids: centroids}, nil
}

func (s *Segmenter) dbscan(ctx context.Context, buf *core.Buffer, epsilon float64, minSamples int) (*core.Result, error) {
	points := buf.Colors(sampler.Random(s.rng(), buf.Len(), DBSCANSampleSize))
	eps := epsilon * EpsilonScale

	sampleLabels, clusters, err := dbscan.Cluster(ctx, points, eps, minSamples)
	if err != nil {
		return nil, err
	}
	centroids := dbscan.Centroids(points, sampleLabels, clusters)

	labels, err := assign.Nearest(ctx, buf, centroids, s.assignConfig(eps))
	if err != nil {
		return nil, err
	}
	return &core.Result{Labels: labels, Centroids: centroids}, nil
}

func (s *Segmenter) meanShift(ctx context.Context, buf *core.Buffer, bandwidth float64) (*core.Result, error) {
	points := buf.Colors(sampler.Random(s.rng(), buf.Len(), MeanShiftSampleSize))

	modes, err := meanshift.Modes(ctx, points, bandwidth, meanshift.DefaultConfig())
	if err != nil {
		return nil, err
	}

	labels, err := assign.Nearest(ctx, buf, modes, s.assignConfig(0))
	if err != nil {
		return nil, err
	}
	return &core.Result{Labels: labels, Centroids: modes}, nil
}

var defaultSegmenter = New()

// ClusterKMeans partitions buf into k clusters with a freshly seeded
// DefaultSeed stream.
func ClusterKMeans(ctx context.Context, buf *core.Buffer, k int) (*core.Result, error) {
	return defaultSegmenter.KMeans(ctx, buf, k)
}

// ClusterDBSCAN clusters buf by density with a freshly seeded DefaultSeed
// stream.
func ClusterDBSCAN(ctx context.Context, buf *core.Buffer, epsilon float64, minSamples int) (*core.Result, error) {
	return defaultSegmenter.DBSCAN(ctx, buf, epsilon, minSamples)
}

// ClusterMeanShift clusters buf around color modes with a freshly seeded
// DefaultSeed stream.
func ClusterMeanShift(ctx context.Context, buf *core.Buffer, bandwidth float64) (*core.Result, error) {
	return defaultSegmenter.MeanShift(ctx, buf, bandwidth)
}

// IsInvalidParameter reports whether err was caused by bad input.
func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}
