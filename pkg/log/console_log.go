package log

import (
	"fmt"
	goLog "log"
	"os"
)

type ConsoleLog struct {
	saramaLog *goLog.Logger
	sinkLog   *goLog.Logger
	level     string
}

func NewConsoleLog(level string) *ConsoleLog {
	return &ConsoleLog{
		level:     level,
		saramaLog: goLog.New(os.Stdout, "[Sarama] ", goLog.LstdFlags),
		sinkLog:   goLog.New(os.Stdout, "[RecordSink] ", goLog.LstdFlags),
	}
}

func (c *ConsoleLog) Infof(format string, args ...interface{}) {
	c.logf(INFO, format, args...)
}

func (c *ConsoleLog) Debugf(format string, args ...interface{}) {
	c.logf(DEBUG, format, args...)
}

func (c *ConsoleLog) Warnf(format string, args ...interface{}) {
	c.logf(WARN, format, args...)
}

func (c *ConsoleLog) Errorf(format string, args ...interface{}) {
	c.logf(ERROR, format, args...)
}

func (c *ConsoleLog) logf(level, format string, args ...interface{}) {
	if !Enabled(c.level, level) {
		return
	}
	c.sinkLog.Printf("%s %s", level, fmt.Sprintf(format, args...))
}

func (c *ConsoleLog) Print(v ...interface{}) {
	c.saramaLog.Print(v...)
}

func (c *ConsoleLog) Printf(format string, v ...interface{}) {
	c.saramaLog.Printf(format, v...)
}

func (c *ConsoleLog) Println(v ...interface{}) {
	c.saramaLog.Println(v...)
}

func (c *ConsoleLog) Lvl() string {
	return c.level
}
