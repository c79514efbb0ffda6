package report

import (
	"context"

	"go.uber.org/zap"

	"prmetrics/internal/domain"
	"prmetrics/internal/domain/pr"
	"prmetrics/internal/domain/stats"
	"prmetrics/internal/domain/team"
)

// Writer serializes a finalized report and returns the path it wrote.
type Writer interface {
	Write(p Period, rows []stats.TeamMetrics, unassigned []string) (string, error)
}

type Summary struct {
	Path       string
	Rows       []stats.TeamMetrics
	Unassigned []string
	Fetched    int
	InPeriod   int
}

type Service interface {
	Generate(ctx context.Context, p Period) (Summary, error)
}

type service struct {
	teams  team.Source
	prs    pr.Source
	writer Writer
	events domain.EventBus
	log    *zap.Logger
}

func NewService(
	teams team.Source,
	prs pr.Source,
	writer Writer,
	events domain.EventBus,
	log *zap.Logger,
) Service {
	return &service{
		teams:  teams,
		prs:    prs,
		writer: writer,
		events: events,
		log:    log,
	}
}

// Generate runs the whole pipeline: load directory, fetch, filter,
// enrich, aggregate, write. Any stage error aborts the run; no partial
// report is ever written.
func (s *service) Generate(ctx context.Context, p Period) (Summary, error) {
	dir, err := s.teams.Load(ctx)
	if err != nil {
		return Summary{}, err
	}
	s.log.Info("team directory loaded", zap.Int("authors", dir.Len()))

	all, err := s.prs.ListAll(ctx)
	if err != nil {
		return Summary{}, err
	}

	filtered := pr.FilterByCreatedRange(all, p.Start, p.End)
	s.log.Info("pull requests fetched",
		zap.Int("total", len(all)),
		zap.Int("in_period", len(filtered)),
		zap.String("start", p.StartDate()),
		zap.String("end", p.EndDate()),
	)

	// The list endpoint omits additions/deletions, so each PR in the
	// period needs one detail call.
	for i := range filtered {
		d, err := s.prs.Details(ctx, filtered[i].Number)
		if err != nil {
			return Summary{}, err
		}
		filtered[i].Additions = d.Additions
		filtered[i].Deletions = d.Deletions
	}

	byTeam, unassigned := stats.Aggregate(filtered, dir)
	rows := stats.Finalize(byTeam)

	logins := unassigned.Logins()
	if len(logins) > 0 {
		s.log.Warn("authors without team assignment", zap.Strings("logins", logins))
		if s.events != nil {
			s.events.Publish(ctx, domain.UnassignedAuthorsEvent(logins))
		}
	}

	path, err := s.writer.Write(p, rows, logins)
	if err != nil {
		return Summary{}, err
	}

	if s.events != nil {
		s.events.Publish(ctx, domain.ReportGeneratedEvent(path, len(rows), len(filtered)))
	}

	return Summary{
		Path:       path,
		Rows:       rows,
		Unassigned: logins,
		Fetched:    len(all),
		InPeriod:   len(filtered),
	}, nil
}
