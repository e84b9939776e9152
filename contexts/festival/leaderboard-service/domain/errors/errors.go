package errors

import "errors"

var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCompetitionNotFound  = errors.New("competition not found")
	ErrCompetitionNotPublic = errors.New("competition results are not published")
)
