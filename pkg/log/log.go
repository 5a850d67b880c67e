package log

const (
	DEBUG string = "DEBUG"
	INFO  string = "INFO"
	WARN  string = "WARN"
	ERROR string = "ERROR"
)

var levelOrder = map[string]int{
	DEBUG: 0,
	INFO:  1,
	WARN:  2,
	ERROR: 3,
}

type Logger interface {
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
	Lvl() string
}

// Enabled reports whether a message at msgLevel passes the configured level.
// Unknown levels are treated as INFO.
func Enabled(configured, msgLevel string) bool {
	c, ok := levelOrder[configured]
	if !ok {
		c = levelOrder[INFO]
	}
	m, ok := levelOrder[msgLevel]
	if !ok {
		m = levelOrder[INFO]
	}
	return m >= c
}
