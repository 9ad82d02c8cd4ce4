// Package ece computes Expected Calibration Error for probabilistic
// classifiers, in two parallel families with built-in cross-checks.
//
// 🚀 What is ECE?
//
//	Partition confidence scores into M equal-width bins, then average
//	the gap between mean confidence and empirical accuracy per bin,
//	weighted by bin population. The result is a percentage: 0 means the
//	classifier's confidence matches reality inside every bin.
//
// Two families:
//   - ECE / ECEV2       — multiclass: confidence is the row maximum,
//     the prediction is the argmax.
//   - ECEBin / ECEBinV2 — binary (K=2): operates on the class-1
//     probability against the empirical class-1 frequency, with an
//     optional L2 (squared-gap) variant.
//
// The V2 forms are independently derived equivalents: they reduce the
// problem to binary correctness, self-calibrate with histogram binning
// (trained and evaluated on the same data, deliberately), and measure
// the mean gap between calibrated and binned scores. Direct and V2
// formulations must agree within floating tolerance — a correctness
// cross-check baked into the metric suite, not a separate metric.
//
// Per-bin diagnostics (accuracy, average confidence, count, bounds for
// every non-empty bin, ascending) are returned as plain values so any
// reliability-diagram renderer can consume them; this package never
// touches rendering state.
//
// Edge policy: empty bins are skipped; bin membership is strictly
// low < s <= high, so a confidence of exactly 0 lands in no bin (it
// stays in N but contributes no gap). M defaults to 15.
package ece
