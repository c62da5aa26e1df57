package teamdata

import "errors"

var (
	// ErrUnknownTeam marks a team name the directory cannot resolve.
	ErrUnknownTeam = errors.New("unknown team")
	// ErrInvalidSeason marks a season that is not a positive year.
	ErrInvalidSeason = errors.New("invalid season")
)

// UnknownTeamError carries the unresolved name as the caller sent it.
type UnknownTeamError struct {
	Name string
}

func (e *UnknownTeamError) Error() string { return "unknown team: " + e.Name }

func (e *UnknownTeamError) Unwrap() error { return ErrUnknownTeam }
