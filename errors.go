package recordsink

import "github.com/aykanferhat/go-kafka-record-sink/internal"

type (
	ErrKind       = internal.ErrKind
	RecordSinkErr = internal.RecordSinkErr
)

// IsDecodeError reports a message key or payload that could not be decoded.
func IsDecodeError(err error) bool {
	return internal.IsDecodeError(err)
}

// IsConfigurationError reports an invalid or missing config, or a batch whose
// keys do not match its payloads.
func IsConfigurationError(err error) bool {
	return internal.IsConfigurationError(err)
}

// IsTransientWriteConflict reports a batch that still hit deadlocks after
// every retry.
func IsTransientWriteConflict(err error) bool {
	return internal.IsTransientWriteConflict(err)
}

func IsStoreError(err error) bool {
	return internal.IsStoreError(err)
}
