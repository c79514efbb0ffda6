package teamfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"prmetrics/internal/domain"
	"prmetrics/internal/domain/team"
)

// Loader reads the static team directory from a JSON file shaped as
// {"login": "team name", ...}.
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

func (l *Loader) Load(_ context.Context) (team.Directory, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return team.Directory{}, domain.NewConfigurationError(
			fmt.Sprintf("team mapping file %q not readable", l.path), err)
	}

	var byLogin map[string]string
	if err := json.Unmarshal(data, &byLogin); err != nil {
		return team.Directory{}, domain.NewConfigurationError(
			fmt.Sprintf("team mapping file %q is not a JSON object of login to team", l.path), err)
	}

	return team.NewDirectory(byLogin), nil
}
