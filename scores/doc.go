// Package scores implements proper scoring rules and cost-weighted
// decision losses for probabilistic classifiers, all sharing one
// reweight-and-normalize pattern.
//
// 🚀 What is scores?
//
//	Four scoring families over natural-log probability matrices:
//		• CostFunction — expected cost of Bayes-optimal decisions under a
//		  cost matrix (defaults to 0/1, i.e. classification error)
//		• LogLoss      — weighted negative log-likelihood
//		• Brier        — weighted squared error against one-hot labels
//		• LogLossSE    — cross-entropy against a reference soft-label set
//	plus the calibration comparators CalLossLogLoss / CalLossBrier
//	(percent loss reduction of a calibrated score set over a raw one)
//	and Shift, a combinator probing loss sensitivity to prior shifts.
//
// Normalization:
//
//	With Options.Normalize (the default) every loss is divided by the
//	loss of a no-information system that always answers with the
//	(possibly reweighted) class prior. A normalized score of 1.0 means
//	“no better than guessing the prior”; 0 means perfect. When the
//	input probabilities equal the reweighted prior for every sample the
//	normalized score is exactly 1.0, bit for bit.
//
// Numeric contract:
//
//	A sample whose reweighting weight is exactly 0 contributes exactly 0
//	to any mean, even when its raw term is non-finite (log of a zero
//	probability). Non-finite weights and zero normalization baselines
//	are surfaced as errors, never as NaN results.
package scores
