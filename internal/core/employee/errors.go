package employee

import "errors"

var (
	ErrInvalidID        = errors.New("employee: invalid id")
	ErrAlreadyPersisted = errors.New("employee: record already has an id")
	ErrEmployeeNotFound = errors.New("employee: not found")
)
