package domain

import "context"

type Event struct {
	Type    string
	Payload map[string]any
}

type EventBus interface {
	Publish(ctx context.Context, e Event)
}

func ReportGeneratedEvent(path string, teams, prs int) Event {
	return Event{
		Type: "report.generated",
		Payload: map[string]any{
			"path":  path,
			"teams": teams,
			"prs":   prs,
		},
	}
}

func UnassignedAuthorsEvent(logins []string) Event {
	return Event{
		Type:    "authors.unassigned",
		Payload: map[string]any{"logins": logins},
	}
}
