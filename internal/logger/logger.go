package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"
)

// maxLogSize is the size past which debug.log is rotated on Init.
const maxLogSize = 10 * 1024 * 1024

var (
	debugLog *os.File
	logPath  string
	log      = newDiscard()
)

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Init initializes the debug logger under ~/.ba-cay
func Init(level string) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	return InitAt(filepath.Join(homeDir, ".ba-cay"), level)
}

// InitAt initializes the debug logger writing to dir/debug.log.
// The terminal belongs to the game, so nothing is logged to stderr.
func InitAt(dir, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(dir, "debug.log")
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		backupPath := filepath.Join(dir, fmt.Sprintf("debug.log.%d", time.Now().Unix()))
		_ = os.Rename(path, backupPath)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	Close()
	debugLog = f
	logPath = path

	l := logrus.New()
	l.SetOutput(f)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000000",
	})
	log = l

	LogInfo("Logger initialized, log file: %s", logPath)
	return nil
}

// Logger returns the shared logger; a discarding one before Init.
func Logger() *logrus.Logger {
	return log
}

// Close closes the debug log file
func Close() {
	if debugLog != nil {
		_ = debugLog.Close()
		debugLog = nil
		log = newDiscard()
	}
}

// LogInfo logs an info message
func LogInfo(format string, args ...any) {
	log.Infof(format, args...)
}

// LogError logs an error message
func LogError(format string, args ...any) {
	log.Errorf(format, args...)
}

// LogPanic logs a panic with stack trace
func LogPanic(r any) {
	log.WithField("stack", string(debug.Stack())).Errorf("panic: %v", r)
}

// GetLogPath returns the current log file path
func GetLogPath() string {
	return logPath
}
