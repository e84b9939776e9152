package errors

import "errors"

var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrTeamNotFound        = errors.New("team not found")
	ErrCompetitionNotFound = errors.New("competition not found")
	ErrInvalidPlace        = errors.New("place must be 1st, 2nd or 3rd")
	ErrDuplicatePlace      = errors.New("at most one result per place")
)
