package embedding

import "math"

// CosineSimilarity returns the cosine of the angle between a and b.
//
// The dot product and both L2 norms are computed in a single pass. If either
// norm is zero the result is 0.
//
// Example:
//
//	sim, err := embedding.CosineSimilarity([]float64{1, 0, 0}, []float64{1, 1, 0})
//	// sim ≈ 0.7071
func CosineSimilarity(a, b []float64) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}

	var dot, normA, normB float64
	for i, v := range a {
		dot += v * b[i]
		normA += v * v
		normB += b[i] * b[i]
	}

	normA = math.Sqrt(normA)
	normB = math.Sqrt(normB)
	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (normA * normB), nil
}

// EuclideanDistance returns the L2 distance between a and b.
func EuclideanDistance(a, b []float64) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}

	var sum float64
	for i, v := range a {
		diff := v - b[i]
		sum += diff * diff
	}

	return math.Sqrt(sum), nil
}

// DotProduct returns the inner product of a and b.
func DotProduct(a, b []float64) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, err
	}

	var dot float64
	for i, v := range a {
		dot += v * b[i]
	}
	return dot, nil
}

// Norm returns the L2 norm of v. An empty vector has norm 0.
func Norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
