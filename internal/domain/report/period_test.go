package report_test

import (
	"errors"
	"testing"
	"time"

	"prmetrics/internal/domain"
	"prmetrics/internal/domain/report"
)

func TestParsePeriod(t *testing.T) {
	p, err := report.ParsePeriod("2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("ParsePeriod: %v", err)
	}
	if !p.Start.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start: %v", p.Start)
	}
	if !p.End.Equal(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected end: %v", p.End)
	}
	if p.StartDate() != "2024-01-01" || p.EndDate() != "2024-01-31" {
		t.Fatalf("unexpected formatting: %s %s", p.StartDate(), p.EndDate())
	}
}

func TestParsePeriod_SameDay(t *testing.T) {
	if _, err := report.ParsePeriod("2024-01-01", "2024-01-01"); err != nil {
		t.Fatalf("single-day period must be valid: %v", err)
	}
}

func TestParsePeriod_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"bad start format", "01/01/2024", "2024-01-31"},
		{"bad end format", "2024-01-01", "jan 31"},
		{"end before start", "2024-02-01", "2024-01-31"},
		{"empty start", "", "2024-01-31"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := report.ParsePeriod(tc.start, tc.end)
			var de *domain.DomainError
			if err == nil || !errors.As(err, &de) || de.Code != domain.ErrorCodeValidation {
				t.Fatalf("expected VALIDATION_ERROR, got %v", err)
			}
		})
	}
}
