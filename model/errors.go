package model

// Domain error taxonomy. DAOs return these so handlers can map them to
// HTTP statuses in one place instead of per call site.

type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

func NewValidationError(detail string) *ValidationError {
	return &ValidationError{Detail: detail}
}

type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string {
	return e.Detail
}

func NewNotFoundError(detail string) *NotFoundError {
	return &NotFoundError{Detail: detail}
}

type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string {
	return e.Detail
}

func NewConflictError(detail string) *ConflictError {
	return &ConflictError{Detail: detail}
}

// StateError reports an operation that is not valid for the entity's
// current lifecycle state, e.g. assigning engineers to a closed job.
type StateError struct {
	Detail string
}

func (e *StateError) Error() string {
	return e.Detail
}

func NewStateError(detail string) *StateError {
	return &StateError{Detail: detail}
}
