package absplit

// Distribution returns the empirical share of each label in an assignment
// result.
//
// Compare against (*Splitter).Groups() to see how close an actual population
// landed to the requested weights. For reasonably sized populations the
// discrepancy is bounded by standard hashing uniformity; a persistent skew
// indicates a volatile identifier or a contract mismatch, not bad luck.
//
// Parameters:
//   - labels: Assignment results, e.g. from AssignBatch
//
// Returns:
//   - map[string]float64: Fraction of the input assigned to each label;
//     empty map for empty input
func Distribution(labels []string) map[string]float64 {
	shares := make(map[string]float64)
	if len(labels) == 0 {
		return shares
	}

	for _, label := range labels {
		shares[label]++
	}

	total := float64(len(labels))
	for label := range shares {
		shares[label] /= total
	}

	return shares
}
