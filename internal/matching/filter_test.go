package matching

import "testing"

func sampleScores() []MatchScore {
	return []MatchScore{
		{EmployeeID: "a", Name: "A", Score: 92.5, HourlyRate: 110, Availability: 60},
		{EmployeeID: "b", Name: "B", Score: 80.0, HourlyRate: 85, Availability: 100},
		{EmployeeID: "c", Name: "C", Score: 64.3, HourlyRate: 55, Availability: 40},
	}
}

func TestFilterMinScoreInclusive(t *testing.T) {
	out := Filter(sampleScores(), Predicate{MinScore: 80})
	if len(out) != 2 || out[0].EmployeeID != "a" || out[1].EmployeeID != "b" {
		t.Fatalf("expected [a b], got %+v", out)
	}
}

func TestFilterMaxRateInclusive(t *testing.T) {
	out := Filter(sampleScores(), Predicate{MaxHourlyRate: 85})
	if len(out) != 2 || out[0].EmployeeID != "b" || out[1].EmployeeID != "c" {
		t.Fatalf("expected [b c], got %+v", out)
	}
}

func TestFilterMinAvailability(t *testing.T) {
	out := Filter(sampleScores(), Predicate{MinAvailability: 60})
	if len(out) != 2 || out[0].EmployeeID != "a" || out[1].EmployeeID != "b" {
		t.Fatalf("expected [a b], got %+v", out)
	}
}

func TestFilterZeroPredicateKeepsAll(t *testing.T) {
	in := sampleScores()
	out := Filter(in, Predicate{})
	if len(out) != len(in) {
		t.Fatalf("expected all entries, got %d", len(out))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	in := sampleScores()
	_ = Filter(in, Predicate{MinScore: 90})
	if in[2].EmployeeID != "c" {
		t.Fatalf("input slice mutated")
	}
}

func TestFilterCommutesWithSort(t *testing.T) {
	in := []MatchScore{
		{EmployeeID: "c", Name: "C", Score: 64.3, HourlyRate: 55},
		{EmployeeID: "a", Name: "A", Score: 92.5, HourlyRate: 110},
		{EmployeeID: "b", Name: "B", Score: 80.0, HourlyRate: 85},
	}
	p := Predicate{MinScore: 70}

	sortScores := func(s []MatchScore) []MatchScore {
		out := append([]MatchScore(nil), s...)
		for i := 0; i < len(out); i++ {
			for j := i + 1; j < len(out); j++ {
				if out[j].Score > out[i].Score {
					out[i], out[j] = out[j], out[i]
				}
			}
		}
		return out
	}

	filteredThenSorted := sortScores(Filter(in, p))
	sortedThenFiltered := Filter(sortScores(in), p)

	if len(filteredThenSorted) != len(sortedThenFiltered) {
		t.Fatalf("lengths differ: %d vs %d", len(filteredThenSorted), len(sortedThenFiltered))
	}
	for i := range filteredThenSorted {
		if filteredThenSorted[i].EmployeeID != sortedThenFiltered[i].EmployeeID {
			t.Fatalf("order differs at %d: %s vs %s", i, filteredThenSorted[i].EmployeeID, sortedThenFiltered[i].EmployeeID)
		}
	}
}

func TestTopBounds(t *testing.T) {
	in := sampleScores()
	if got := Top(in, 2); len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got := Top(in, 10); len(got) != 3 {
		t.Fatalf("expected all entries, got %d", len(got))
	}
}
