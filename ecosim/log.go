package ecosim

import (
	"fmt"
	"github.com/pkg/errors"
	"log"
	"os"
)

// LoggerLevel The importance rank of a log message. Messages ranked below the
// configured level are dropped.
type LoggerLevel int

const (
	// LogLevelDebug The rank of per-turn diagnostics
	LogLevelDebug LoggerLevel = iota
	// LogLevelInfo The rank of run progress messages
	LogLevelInfo
	// LogLevelWarning The rank of recoverable oddities
	LogLevelWarning
	// LogLevelError The rank of invariant violations and failures
	LogLevelError
)

func (l LoggerLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarning:
		return "warn"
	case LogLevelError:
		return "error"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

var (
	// LogLevel The current log level of the simulation
	LogLevel = LogLevelInfo

	debugLogger = log.New(os.Stdout, "DEBUG: ", log.Ltime|log.Lshortfile)
	infoLogger  = log.New(os.Stdout, "INFO: ", log.Ltime|log.Lshortfile)
	warnLogger  = log.New(os.Stdout, "ALERT: ", log.Ltime|log.Lshortfile)
	errorLogger = log.New(os.Stderr, "ERROR: ", log.Ltime|log.Lshortfile)
)

// ParseLoggerLevel maps the textual level used by the runner settings and the
// command line to its rank.
func ParseLoggerLevel(level string) (LoggerLevel, error) {
	switch level {
	case "debug":
		return LogLevelDebug, nil
	case "info":
		return LogLevelInfo, nil
	case "warn":
		return LogLevelWarning, nil
	case "error":
		return LogLevelError, nil
	}
	return LogLevelError, errors.Errorf("unsupported log level: [%s], use one of 'debug', 'info', 'warn', 'error'", level)
}

// InitLogger is to configure the package logging from a textual level.
func InitLogger(level string) error {
	parsed, err := ParseLoggerLevel(level)
	if err != nil {
		return err
	}
	LogLevel = parsed
	return nil
}

// DebugLog formats and outputs a message at debug rank.
func DebugLog(format string, a ...interface{}) {
	logAt(LogLevelDebug, debugLogger, format, a...)
}

// InfoLog formats and outputs a message at info rank.
func InfoLog(format string, a ...interface{}) {
	logAt(LogLevelInfo, infoLogger, format, a...)
}

// WarnLog formats and outputs a message at warning rank.
func WarnLog(format string, a ...interface{}) {
	logAt(LogLevelWarning, warnLogger, format, a...)
}

// ErrorLog formats and outputs a message at error rank.
func ErrorLog(format string, a ...interface{}) {
	logAt(LogLevelError, errorLogger, format, a...)
}

func logAt(rank LoggerLevel, logger *log.Logger, format string, a ...interface{}) {
	if rank < LogLevel {
		return
	}
	// calldepth 3 attributes the line to the DebugLog/.../ErrorLog caller
	_ = logger.Output(3, fmt.Sprintf(format, a...))
}
