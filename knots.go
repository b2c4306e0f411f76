package curvelab

// KnotVector is a non-decreasing sequence of parameter values delimiting the
// pieces of a B-Spline.
type KnotVector []float64

// GenerateKnots returns the clamped, uniform knot vector for n control points
// and the given degree: degree+1 zeros, the n-degree-1 interior knots
// i/(n-degree) for i = 1 … n-degree-1, and degree+1 ones. Its length is
// n+degree+1.
//
// If n <= degree, there are too few points for a spline of that degree and
// GenerateKnots returns degree+1 zeros followed by degree+1 ones.
func GenerateKnots(n, degree int) KnotVector {
	if n <= degree {
		knots := make(KnotVector, 2*(degree+1))
		for i := degree + 1; i < len(knots); i++ {
			knots[i] = 1
		}
		return knots
	}

	knots := make(KnotVector, 0, n+degree+1)
	for range degree + 1 {
		knots = append(knots, 0)
	}
	for i := 1; i < n-degree; i++ {
		knots = append(knots, float64(i)/float64(n-degree))
	}
	for range degree + 1 {
		knots = append(knots, 1)
	}
	return knots
}

// IsNonDecreasing reports whether no knot is smaller than its predecessor.
func (kv KnotVector) IsNonDecreasing() bool {
	for i := 1; i < len(kv); i++ {
		if kv[i] < kv[i-1] {
			return false
		}
	}
	return true
}

// IsClamped reports whether the first degree+1 knots are all 0 and the last
// degree+1 knots are all 1.
func (kv KnotVector) IsClamped(degree int) bool {
	if degree < 0 || len(kv) < 2*(degree+1) {
		return false
	}
	for _, k := range kv[:degree+1] {
		if k != 0 {
			return false
		}
	}
	for _, k := range kv[len(kv)-degree-1:] {
		if k != 1 {
			return false
		}
	}
	return true
}

// IsValid reports whether kv is a clamped, non-decreasing knot vector for a
// spline of the given degree.
func (kv KnotVector) IsValid(degree int) bool {
	return kv.IsClamped(degree) && kv.IsNonDecreasing()
}

// Clone returns a copy of kv.
func (kv KnotVector) Clone() KnotVector {
	return append(KnotVector(nil), kv...)
}
