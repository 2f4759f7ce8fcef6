// Package kmeans implements k-means clustering over color samples.
//
// Seeding is k-means++; training runs a bounded number of Lloyd iterations
// per restart and keeps the restart with the lowest inertia.
package kmeans
