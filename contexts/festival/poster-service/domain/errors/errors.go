package errors

import "errors"

var (
	ErrInvalidRequest      = errors.New("invalid poster request")
	ErrCompetitionNotFound = errors.New("competition not found")
	ErrPortraitUndecodable = errors.New("portrait image could not be decoded")
	ErrRenderFailed        = errors.New("poster rendering failed")
)
