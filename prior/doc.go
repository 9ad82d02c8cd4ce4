// Package prior computes empirical class priors and the per-sample
// weights that make losses comparable across label distributions.
//
// Reweighting answers the question “what would this loss have been if
// the evaluation set had a different class balance?”: each sample is
// weighted by target[y]/empirical[y], so that a metric averaged with
// those weights reflects the target prior rather than the one the data
// happened to have.
//
// Weight policy (deterministic, documented):
//   - no target prior            → uniform weight 1 (no allocation)
//   - target[y] == 0             → weight exactly 0, even if empirical[y] == 0
//   - empirical[y] == 0, target>0 → weight +Inf; consumers must reject it
//     (scores does, with ErrUnobservedClass) before aggregating
//
// The Weights type keeps the uniform/per-sample distinction explicit
// instead of relying on silent scalar broadcasting.
package prior
