package errors

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrRevisionConflict   = errors.New("document revision conflict")
	ErrStorageUnavailable = errors.New("document storage unavailable")
)
