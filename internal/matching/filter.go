package matching

// Predicate restricts a ranked result set. All bounds are inclusive; a zero
// value disables the corresponding bound.
type Predicate struct {
	MinScore        float64
	MaxHourlyRate   float64
	MinAvailability float64
}

// Filter returns the scores satisfying the predicate, preserving order.
// Filtering is pure: the input slice is never mutated, and an entry that
// satisfies no bound is simply absent from the result.
func Filter(scores []MatchScore, p Predicate) []MatchScore {
	out := make([]MatchScore, 0, len(scores))
	for _, s := range scores {
		if p.MinScore > 0 && s.Score < p.MinScore {
			continue
		}
		if p.MaxHourlyRate > 0 && s.HourlyRate > p.MaxHourlyRate {
			continue
		}
		if p.MinAvailability > 0 && s.Availability < p.MinAvailability {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Top returns at most n leading entries without mutating the input.
func Top(scores []MatchScore, n int) []MatchScore {
	if n <= 0 || n >= len(scores) {
		return append([]MatchScore(nil), scores...)
	}
	return append([]MatchScore(nil), scores[:n]...)
}
