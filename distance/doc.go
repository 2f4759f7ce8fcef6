// Package distance provides color distance calculations.
//
// # Supported Metrics
//
//   - MetricSquaredL2: Squared Euclidean distance (k-means objective, mean shift window)
//   - MetricL2: Euclidean distance (assignment, DBSCAN reachability, metrics)
//
// # Usage
//
//	d := distance.Euclidean(a, b)
//	fn, _ := distance.Provider(distance.MetricL2)
//	idx, d := distance.Nearest(p, centroids, fn)
package distance
