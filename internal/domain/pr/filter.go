package pr

import "time"

// FilterByCreatedRange keeps pull requests created inside the inclusive
// [start, end] calendar-day range. Both bounds are UTC midnights; a PR
// created at any instant of the start or end day stays in.
func FilterByCreatedRange(prs []PullRequest, start, end time.Time) []PullRequest {
	limit := end.AddDate(0, 0, 1)

	out := make([]PullRequest, 0, len(prs))
	for _, p := range prs {
		created := p.CreatedAt.UTC()
		if created.Before(start) || !created.Before(limit) {
			continue
		}
		out = append(out, p)
	}
	return out
}
