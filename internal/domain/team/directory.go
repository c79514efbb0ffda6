package team

import "context"

// Directory maps author logins to team names. Loaded once at startup and
// read-only afterwards.
type Directory struct {
	byLogin map[string]string
}

func NewDirectory(byLogin map[string]string) Directory {
	m := make(map[string]string, len(byLogin))
	for login, name := range byLogin {
		m[login] = name
	}
	return Directory{byLogin: m}
}

// Lookup returns the team of the given login, or ok=false when the author
// has no assignment.
func (d Directory) Lookup(login string) (string, bool) {
	name, ok := d.byLogin[login]
	return name, ok
}

func (d Directory) Len() int { return len(d.byLogin) }

// Source loads the directory from wherever it is kept.
type Source interface {
	Load(ctx context.Context) (Directory, error)
}
