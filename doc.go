// Package calmetrics is your toolbox for judging probabilistic
// classifiers the calibration-aware way — proper scoring rules,
// cost-weighted decision losses, and Expected Calibration Error.
//
// 🚀 What is calmetrics?
//
//	A small, deterministic, side-effect-free library that brings together:
//		• Proper scoring rules: log-loss, Brier score, soft-label cross-entropy
//		• Cost-matrix decision losses with Bayes-optimal decisions
//		• Prior reweighting: score a system under a target class distribution
//		• Expected Calibration Error: multiclass & binary, L1 & L2 variants
//		• Histogram-binning calibration (the piece ECE is secretly made of)
//		• Percent loss reduction attributable to a calibration transform
//
// ✨ Why choose calmetrics?
//
//   - Self-checking – every ECE ships with an independently derived
//     “calibrate-then-compare” twin that must agree within tolerance
//   - Numerically honest – zero-weight samples never leak NaN into a mean,
//     degenerate baselines are errors, not infinities
//   - Pure Go + gonum – plain *mat.Dense in, plain float64 out
//   - Renderer-friendly – ECE returns per-bin accuracy/confidence/count
//     tuples ready for any reliability-diagram plotter
//
// Everything is organized under four subpackages:
//
//	prior/   — empirical class priors & target-prior sample weights
//	scores/  — CostFunction, LogLoss, Brier, LogLossSE, CalLoss*, Shift
//	histbin/ — equal-width histogram-binning calibrator
//	ece/     — ECE, ECEV2, ECEBin, ECEBinV2 + per-bin diagnostics
//
// Quick example:
//
//	lp := mat.NewDense(4, 2, []float64{ /* natural-log probabilities */ })
//	labels := []int{0, 1, 1, 0}
//	opts := scores.DefaultOptions()
//	nll, err := scores.LogLoss(lp, labels, &opts)
//
// All functions are pure and safe for concurrent use; inputs are never
// mutated.
//
//	go get github.com/katalvlaran/calmetrics
package calmetrics
