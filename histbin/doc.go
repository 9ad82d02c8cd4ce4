// Package histbin implements histogram-binning calibration over
// equal-width confidence bins.
//
// The score range [0,1] is partitioned into M half-open intervals
// (low, high]; a fitted Model replaces each score by its bin's
// empirical positive frequency, and also exposes the bin's average raw
// training score (the "binned" reference). That pair is exactly what
// the calibrate-then-compare ECE formulation consumes: the mean
// absolute gap between the two, over all samples, is the ECE.
//
// Boundary invariant: membership is strictly low < s <= high in every
// bin, so a score of exactly 0 belongs to no bin. Unbinned samples
// (and samples falling into a bin the training data never populated)
// calibrate to probability 0 with a binned reference of 0.
package histbin
