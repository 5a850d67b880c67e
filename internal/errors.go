package internal

import (
	"errors"
	"fmt"
	"time"
)

type ErrKind string

const (
	// ErrKindDecode marks a malformed key or payload. Fatal for the batch.
	ErrKindDecode ErrKind = "decode"
	// ErrKindTransientWriteConflict marks a deadlock or serialization failure
	// that survived every retry.
	ErrKindTransientWriteConflict ErrKind = "transient_write_conflict"
	// ErrKindConfiguration marks a programming or configuration defect.
	ErrKindConfiguration ErrKind = "configuration"
)

type RecordSinkErr struct {
	Instant time.Time `json:"instant"`
	Cause   error     `json:"-"`
	Detail  string    `json:"detail"`
	Kind    ErrKind   `json:"kind,omitempty"`
}

func (err *RecordSinkErr) Error() string {
	if err.Cause == nil {
		return err.Detail
	}
	return err.Detail + ": " + err.Cause.Error()
}

func (err *RecordSinkErr) Unwrap() error {
	return err.Cause
}

func NewErrWithArgs(detail string, a ...any) error {
	return NewErr(fmt.Sprintf(detail, a...))
}

func NewErr(detail string) error {
	return &RecordSinkErr{
		Detail:  detail,
		Instant: time.Now(),
	}
}

func newKindErr(kind ErrKind, cause error, detail string, a ...any) error {
	return &RecordSinkErr{
		Kind:    kind,
		Cause:   cause,
		Detail:  fmt.Sprintf(detail, a...),
		Instant: time.Now(),
	}
}

func newDecodeErr(cause error, detail string, a ...any) error {
	return newKindErr(ErrKindDecode, cause, detail, a...)
}

func newConfigurationErr(detail string, a ...any) error {
	return newKindErr(ErrKindConfiguration, nil, detail, a...)
}

func newTransientConflictErr(cause error, attempts int) error {
	return newKindErr(ErrKindTransientWriteConflict, cause, "write conflict persisted after %d attempt(s)", attempts)
}

// IsKind reports whether any error in err's chain is a RecordSinkErr of kind.
func IsKind(err error, kind ErrKind) bool {
	var sinkErr *RecordSinkErr
	for err != nil {
		if !errors.As(err, &sinkErr) {
			return false
		}
		if sinkErr.Kind == kind {
			return true
		}
		err = sinkErr.Cause
	}
	return false
}

func IsDecodeError(err error) bool {
	return IsKind(err, ErrKindDecode)
}

func IsConfigurationError(err error) bool {
	return IsKind(err, ErrKindConfiguration)
}

func IsTransientWriteConflict(err error) bool {
	return IsKind(err, ErrKindTransientWriteConflict)
}

// IsStoreError reports errors raised by the record store itself, which are
// returned unchanged.
func IsStoreError(err error) bool {
	return err != nil && !IsDecodeError(err) && !IsConfigurationError(err) && !IsTransientWriteConflict(err)
}
