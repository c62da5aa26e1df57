package teams

import "strings"

// Directory resolves human team names to provider team IDs.
// It is immutable after construction and safe for concurrent use.
type Directory struct {
	ids   map[string]string
	teams []Team
}

// NewDirectory indexes each team under its lower-cased nickname, full name and alias.
// Later entries do not overwrite earlier ones on key collisions.
func NewDirectory(items []Team) *Directory {
	d := &Directory{
		ids:   make(map[string]string, len(items)*3),
		teams: make([]Team, len(items)),
	}
	copy(d.teams, items)
	for _, t := range items {
		for _, key := range []string{t.Name, t.FullName(), t.Alias} {
			key = strings.ToLower(key)
			if key == "" {
				continue
			}
			if _, exists := d.ids[key]; !exists {
				d.ids[key] = t.ID
			}
		}
	}
	return d
}

// Resolve returns the provider ID for name, matched case-insensitively.
// The boolean reports presence; an empty ID can still be a valid entry.
func (d *Directory) Resolve(name string) (string, bool) {
	if d == nil {
		return "", false
	}
	id, ok := d.ids[strings.ToLower(name)]
	return id, ok
}

// Teams returns a copy of the indexed teams in registration order.
func (d *Directory) Teams() []Team {
	if d == nil {
		return nil
	}
	out := make([]Team, len(d.teams))
	copy(out, d.teams)
	return out
}

// Len returns the number of indexed teams.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.teams)
}
