package pr

import "time"

// PullRequest is the typed form of one raw API record, validated at
// construction time. MergedAt is nil while the PR is open or closed
// without a merge.
type PullRequest struct {
	Number    int
	Author    string
	CreatedAt time.Time
	MergedAt  *time.Time
	Additions int
	Deletions int
	Merged    bool
}

// CycleTimeDays is the elapsed time between creation and merge, in days.
// Zero for unmerged PRs.
func (p PullRequest) CycleTimeDays() float64 {
	if !p.Merged || p.MergedAt == nil {
		return 0
	}
	return p.MergedAt.Sub(p.CreatedAt).Hours() / 24
}
