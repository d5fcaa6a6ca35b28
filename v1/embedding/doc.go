// Package embedding provides vector math for comparing text embeddings.
//
// # Overview
//
// Embeddings returned by the Ollama client (see package ollama) are plain
// []float64 vectors. This package offers the comparison primitives that are
// typically applied to them:
//
//	sim, err := embedding.CosineSimilarity(a, b)
//	dist, err := embedding.EuclideanDistance(a, b)
//
// Both functions are pure: they perform no I/O and never retain the slices
// they are given.
//
// # Validation
//
// Every function requires two non-empty vectors of the same dimension. When
// either vector is empty or the lengths differ, the function returns an error
// wrapping ErrInvalidArgument:
//
//	if _, err := embedding.CosineSimilarity(a, b); errors.Is(err, embedding.ErrInvalidArgument) {
//	    // dimension mismatch
//	}
//
// # Zero Vectors
//
// Cosine similarity is undefined for a zero vector. CosineSimilarity returns 0
// ("no similarity") in that case instead of NaN.
//
// # Thread Safety
//
// All functions are safe for concurrent use as long as callers do not mutate
// the input slices while a call is in progress.
package embedding
