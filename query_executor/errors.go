package executor

import (
	"errors"
	"fmt"
)

// Failure classes. Every error returned while executing a statement
// matches one of these with errors.Is, except plain conversion errors.
var (
	ErrSchema     = errors.New("schema error")
	ErrConstraint = errors.New("constraint violation")
	ErrStorage    = errors.New("storage error")
)

// execError carries a user-facing message and its failure class.
type execError struct {
	kind error
	msg  string
	err  error
}

func (e *execError) Error() string { return e.msg }

func (e *execError) Unwrap() []error {
	if e.err == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.err}
}

func schemaErr(cause error, format string, args ...any) error {
	return &execError{kind: ErrSchema, msg: fmt.Sprintf(format, args...), err: cause}
}

func constraintErr(cause error, format string, args ...any) error {
	return &execError{kind: ErrConstraint, msg: fmt.Sprintf(format, args...), err: cause}
}

func storageErr(err error) error {
	return &execError{kind: ErrStorage, msg: err.Error(), err: err}
}

// failureMessage renders an execution failure for Result.Message.
func failureMessage(err error) string {
	var ee *execError
	if errors.As(err, &ee) {
		switch ee.kind {
		case ErrSchema:
			return ee.msg
		case ErrConstraint:
			return "Constraint violation: " + ee.msg
		}
	}
	return "Execution error: " + err.Error()
}
