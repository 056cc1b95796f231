package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrHireDateInFuture = errors.New("hire date is in the future")
)
