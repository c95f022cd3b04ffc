package todo

import "errors"

// Todo-related errors
var (
	// ErrTodoNotFound is returned when no todo has the requested id.
	// Callers report it as a normal outcome, not a failure.
	ErrTodoNotFound = errors.New("todo not found")
)
