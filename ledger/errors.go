package ledger

import (
	"errors"
	"fmt"
)

// Error taxonomy. Every failure surfaced by the three ledgers wraps exactly
// one of these sentinels, so callers can classify with errors.Is while the
// wrapped message carries the offending values.
var (
	ErrUnauthorized     = errors.New("Unauthorized")
	ErrInvalidArgument  = errors.New("InvalidArgument")
	ErrCapacityExceeded = errors.New("CapacityExceeded")
	ErrStateConflict    = errors.New("StateConflict")
	ErrTransferFailure  = errors.New("TransferFailure")
	ErrPaused           = errors.New("Paused")
)

type CustomError struct {
	Code    int
	Message string
	Err     error
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func NewCustomError(code int, message string, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func ErrMissingRole(role, account string) error {
	return fmt.Errorf("%w: account %s is missing role %s", ErrUnauthorized, account, role)
}

func ErrZeroAddress(entity string) error {
	return fmt.Errorf("%w: %s cannot be the zero address", ErrInvalidArgument, entity)
}

func ErrZeroAmount(entity string) error {
	return fmt.Errorf("%w: %s amount cannot be zero", ErrInvalidArgument, entity)
}

func ErrMalformedAmount(value string) error {
	return fmt.Errorf("%w: malformed amount %q", ErrInvalidArgument, value)
}
