package recordsink

import "github.com/aykanferhat/go-kafka-record-sink/pkg/log"

type Logger = log.Logger

const (
	LogLevelDebug = log.DEBUG
	LogLevelInfo  = log.INFO
	LogLevelWarn  = log.WARN
	LogLevelError = log.ERROR
)

// NewConsoleLogger writes to stdout. Sarama's own logs are forwarded only at
// debug level.
func NewConsoleLogger(level string) Logger {
	return log.NewConsoleLog(level)
}
