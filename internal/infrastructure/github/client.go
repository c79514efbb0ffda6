package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v62/github"

	"prmetrics/internal/domain"
	"prmetrics/internal/domain/pr"
)

// Client fetches pull requests from one repository through the GitHub
// REST API. No retries: the first failed call aborts the run.
type Client struct {
	gh    *gh.Client
	owner string
	repo  string
}

// NewClient builds an authenticated client. baseURL overrides the public
// API endpoint (GitHub Enterprise or a test server); empty means
// api.github.com.
func NewClient(token, owner, repo, baseURL string) (*Client, error) {
	c := gh.NewClient(nil).WithAuthToken(token)

	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, domain.NewConfigurationError("invalid API base URL", err)
		}
		c.BaseURL = u
	}

	return &Client{gh: c, owner: owner, repo: repo}, nil
}

// ListAll walks every page of the pull-request listing, state=all,
// oldest pagination style: follow NextPage until the API reports none.
func (c *Client) ListAll(ctx context.Context) ([]pr.PullRequest, error) {
	opt := &gh.PullRequestListOptions{
		State:       "all",
		ListOptions: gh.ListOptions{PerPage: 100},
	}

	var out []pr.PullRequest
	for {
		page, resp, err := c.gh.PullRequests.List(ctx, c.owner, c.repo, opt)
		if err != nil {
			return nil, domain.NewNetworkError(
				fmt.Sprintf("listing pull requests for %s/%s failed", c.owner, c.repo), err)
		}

		for _, raw := range page {
			p, err := toDomain(raw)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}

		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return out, nil
}

// Details fetches one PR; the listing endpoint does not carry the
// additions/deletions counters.
func (c *Client) Details(ctx context.Context, number int) (pr.Details, error) {
	raw, _, err := c.gh.PullRequests.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		return pr.Details{}, domain.NewNetworkError(
			fmt.Sprintf("fetching pull request #%d failed", number), err)
	}
	return pr.Details{
		Additions: raw.GetAdditions(),
		Deletions: raw.GetDeletions(),
	}, nil
}

// toDomain rejects malformed records up front instead of letting untyped
// holes flow downstream. Merged is derived from merged_at, same as the
// listing payload semantics.
func toDomain(raw *gh.PullRequest) (pr.PullRequest, error) {
	login := raw.GetUser().GetLogin()
	if login == "" {
		return pr.PullRequest{}, domain.NewValidationError(
			fmt.Sprintf("pull request #%d record has no author login", raw.GetNumber()), nil)
	}

	created := raw.GetCreatedAt()
	if created.IsZero() {
		return pr.PullRequest{}, domain.NewValidationError(
			fmt.Sprintf("pull request #%d record has no created_at", raw.GetNumber()), nil)
	}

	var mergedAt *time.Time
	if raw.MergedAt != nil {
		t := raw.MergedAt.Time.UTC()
		mergedAt = &t
	}

	return pr.PullRequest{
		Number:    raw.GetNumber(),
		Author:    login,
		CreatedAt: created.Time.UTC(),
		MergedAt:  mergedAt,
		Merged:    mergedAt != nil,
	}, nil
}
