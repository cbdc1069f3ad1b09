package strength

// Estimate1RM returns the estimated one-rep max for a weight/rep pair using
// the Brzycki formula. A single rep is its own max, and the formula inverts
// at 37+ reps, so both ends clamp to the lifted weight.
func Estimate1RM(weight float64, reps int) float64 {
	if reps == 1 {
		return weight
	}
	if reps >= 37 {
		return weight
	}
	return weight * 36 / float64(37-reps)
}
