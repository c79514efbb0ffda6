package csvreport

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"prmetrics/internal/domain"
	"prmetrics/internal/domain/report"
	"prmetrics/internal/domain/stats"
)

var header = []string{
	"Team",
	"Total PRs",
	"Merged PRs",
	"Lines Added",
	"Lines Deleted",
	"Avg Cycle Time (d)",
	"Merge Rate %",
}

// Writer emits the report as a CSV file under dir, one file per period,
// overwriting any previous run for the same period.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

func (w *Writer) Write(p report.Period, rows []stats.TeamMetrics, unassigned []string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", domain.NewConfigurationError(
			fmt.Sprintf("output directory %q not writable", w.dir), err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("team_metrics_%s_to_%s.csv", p.StartDate(), p.EndDate()))

	f, err := os.Create(path)
	if err != nil {
		return "", domain.NewConfigurationError(
			fmt.Sprintf("cannot create report file %q", path), err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if err := cw.Write(header); err != nil {
		return "", domain.NewConfigurationError("writing report header failed", err)
	}
	for _, r := range rows {
		rec := []string{
			r.Team,
			strconv.Itoa(r.TotalPRs),
			strconv.Itoa(r.MergedPRs),
			strconv.Itoa(r.LinesAdded),
			strconv.Itoa(r.LinesDeleted),
			strconv.FormatFloat(r.AvgCycleTimeDays, 'f', 2, 64),
			strconv.FormatFloat(r.MergeRate, 'f', 2, 64),
		}
		if err := cw.Write(rec); err != nil {
			return "", domain.NewConfigurationError("writing report row failed", err)
		}
	}

	// Trailing section for authors with no team assignment.
	if len(unassigned) > 0 {
		if err := cw.Write([]string{"Unassigned Authors"}); err != nil {
			return "", domain.NewConfigurationError("writing report row failed", err)
		}
		for _, login := range unassigned {
			if err := cw.Write([]string{login}); err != nil {
				return "", domain.NewConfigurationError("writing report row failed", err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", domain.NewConfigurationError("flushing report failed", err)
	}

	return path, nil
}
