// Package pixclust provides unsupervised color clustering of raster images.
//
// A Segmenter partitions the pixels of an RGBA buffer with one of three
// algorithms and scores the partition with internal validity metrics.
//
// # Quick Start
//
//	buf := core.FromRGBA(img)
//	s := pixclust.New()
//	res, _ := s.KMeans(ctx, buf, 5)
//	fmt.Println(len(res.Labels), len(res.Centroids))
//
// # Algorithms
//
//	// K-MEANS: exactly k clusters, every pixel labeled.
//	res, _ := s.KMeans(ctx, buf, k)
//
//	// DBSCAN: density-based, pixels far from every cluster are core.Noise.
//	res, _ := s.DBSCAN(ctx, buf, epsilon, minSamples)
//
//	// MEAN SHIFT: the number of clusters is discovered.
//	res, _ := s.MeanShift(ctx, buf, bandwidth)
//
// All three train on a bounded sample of the image (a fixed stride for
// k-means, a random draw of at most 2000 or 1000 pixels for DBSCAN and mean
// shift) and then label every pixel by its nearest centroid.
//
// # Segmentations
//
// Segment bundles a result with its quality report, a display palette and
// per-cluster summaries:
//
//	seg, _ := s.Segment(ctx, pixclust.Request{
//	    Buffer:    buf,
//	    Algorithm: pixclust.MeanShift,
//	    Params:    pixclust.DefaultParams(),
//	})
//	out := seg.Render()
//	data, _ := seg.Encode(codec.Default, codec.CompressionZSTD)
//
// # Determinism
//
// Each call reseeds its pseudo-random stream from the configured seed, so
// identical input yields identical output. WithSharedRNG keeps one stream
// across calls instead.
package pixclust
