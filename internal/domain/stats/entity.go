package stats

import "sort"

// TeamMetrics accumulates one team's numbers while PRs are folded in.
// AvgCycleTimeDays and MergeRate stay zero until Finalize.
type TeamMetrics struct {
	Team             string
	TotalPRs         int
	MergedPRs        int
	LinesAdded       int
	LinesDeleted     int
	CycleTimeDaysSum float64
	AvgCycleTimeDays float64
	MergeRate        float64
}

// UnassignedSet collects authors that have no team directory entry.
type UnassignedSet map[string]struct{}

func (s UnassignedSet) Add(login string) { s[login] = struct{}{} }

func (s UnassignedSet) Has(login string) bool {
	_, ok := s[login]
	return ok
}

// Logins returns the set in lexical order.
func (s UnassignedSet) Logins() []string {
	out := make([]string, 0, len(s))
	for login := range s {
		out = append(out, login)
	}
	sort.Strings(out)
	return out
}
