package teamfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"prmetrics/internal/domain"
	"prmetrics/internal/infrastructure/teamfile"
)

func writeTeams(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teams.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTeams(t, `{"alice": "core", "carol": "platform"}`)

	dir, err := teamfile.NewLoader(path).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, dir.Len())

	name, ok := dir.Lookup("alice")
	require.True(t, ok)
	require.Equal(t, "core", name)
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	_, err := teamfile.NewLoader(path).Load(context.Background())
	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	require.Equal(t, domain.ErrorCodeConfiguration, de.Code)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeTeams(t, `[{"github_user": "alice"}`)

	_, err := teamfile.NewLoader(path).Load(context.Background())
	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	require.Equal(t, domain.ErrorCodeConfiguration, de.Code)
}

func TestLoad_WrongShape(t *testing.T) {
	path := writeTeams(t, `["alice", "bob"]`)

	_, err := teamfile.NewLoader(path).Load(context.Background())
	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	require.Equal(t, domain.ErrorCodeConfiguration, de.Code)
}

func TestLoad_EmptyMapping(t *testing.T) {
	path := writeTeams(t, `{}`)

	dir, err := teamfile.NewLoader(path).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, dir.Len())
}
