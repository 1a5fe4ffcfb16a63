package errs

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type ForbiddenError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

type InvalidTimeframeError struct {
	ErrorMessage
}

type UnsupportedGroupByError struct {
	ErrorMessage
}

// DatabaseError wraps a store failure. Operation is "read", "create",
// "update" or "delete".
type DatabaseError struct {
	ErrorMessage
	Operation string
	Err       error
}

func (e *DatabaseError) Unwrap() error { return e.Err }

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewForbiddenError(message string) *ForbiddenError {
	return &ForbiddenError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewInvalidTimeframeError(message string) *InvalidTimeframeError {
	return &InvalidTimeframeError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewUnsupportedGroupByError(groupBy string) *UnsupportedGroupByError {
	return &UnsupportedGroupByError{
		ErrorMessage: ErrorMessage{Message: "unsupported groupBy: " + groupBy},
	}
}

func NewDatabaseError(operation, message string, err error) *DatabaseError {
	return &DatabaseError{
		ErrorMessage: ErrorMessage{Message: message},
		Operation:    operation,
		Err:          err,
	}
}
