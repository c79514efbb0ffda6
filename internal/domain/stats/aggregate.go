package stats

import (
	"sort"

	"prmetrics/internal/domain/pr"
	"prmetrics/internal/domain/team"
)

// Aggregate folds pull requests into per-team metrics. A PR whose author
// has no directory entry lands in the unassigned set and contributes to no
// team; every PR ends up in exactly one of the two.
func Aggregate(prs []pr.PullRequest, dir team.Directory) (map[string]*TeamMetrics, UnassignedSet) {
	byTeam := make(map[string]*TeamMetrics)
	unassigned := make(UnassignedSet)

	for _, p := range prs {
		name, ok := dir.Lookup(p.Author)
		if !ok {
			unassigned.Add(p.Author)
			continue
		}

		m := byTeam[name]
		if m == nil {
			m = &TeamMetrics{Team: name}
			byTeam[name] = m
		}

		m.TotalPRs++
		if p.Merged {
			m.MergedPRs++
			m.LinesAdded += p.Additions
			m.LinesDeleted += p.Deletions
			m.CycleTimeDaysSum += p.CycleTimeDays()
		}
	}

	return byTeam, unassigned
}

// Finalize computes the derived fields and returns rows ordered by merge
// rate descending, team name ascending on ties. The zero guards keep both
// divisions total.
func Finalize(byTeam map[string]*TeamMetrics) []TeamMetrics {
	rows := make([]TeamMetrics, 0, len(byTeam))
	for _, m := range byTeam {
		row := *m
		if row.MergedPRs > 0 {
			row.AvgCycleTimeDays = row.CycleTimeDaysSum / float64(row.MergedPRs)
		}
		if row.TotalPRs > 0 {
			row.MergeRate = float64(row.MergedPRs) / float64(row.TotalPRs) * 100
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].MergeRate != rows[j].MergeRate {
			return rows[i].MergeRate > rows[j].MergeRate
		}
		return rows[i].Team < rows[j].Team
	})

	return rows
}
