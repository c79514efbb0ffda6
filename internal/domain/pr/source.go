package pr

import "context"

// Details carries the size counters that the list endpoint omits.
type Details struct {
	Additions int
	Deletions int
}

// Source produces pull requests from the remote review system. ListAll
// walks every page; each call re-fetches from scratch.
type Source interface {
	ListAll(ctx context.Context) ([]PullRequest, error)
	Details(ctx context.Context, number int) (Details, error)
}
