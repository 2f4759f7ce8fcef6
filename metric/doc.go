// Package metric scores a pixel partition with cluster-validity statistics.
//
// All functions are total: degenerate input (too few clusters, empty
// groups, zero variance, NaN) never produces an error. Each metric
// substitutes its documented fallback instead:
//
//	Silhouette        0.5
//	Davies-Bouldin    1.0
//	Calinski-Harabasz 100
//
// Silhouette and Calinski-Harabasz look at every floor(n/MaxSamples)-th
// pixel, so a sample holds up to 2*MaxSamples-1 pixels. The Davies-Bouldin
// index reported by Evaluate is the simplified variant with a constant
// scatter; TextbookDaviesBouldin measures real intra-cluster dispersion.
package metric
