package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("constraint violation")
	ErrUnauthenticated = errors.New("unauthenticated")
)
