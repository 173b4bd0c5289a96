// Package selection turns inclusion probabilities into predictor sets.
//
// A Set is a compressed bitmap of predictor indices (RoaringBitmap). It is
// built by thresholding alpha, combined across chains with And/Or, and turned
// back into an ascending update order, which is how an active-set sweep
// restricts a pass to the predictors that still matter.
package selection
