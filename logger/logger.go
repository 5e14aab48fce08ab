package logger

// A Level is the importance or severity of a log event.
// The higher the level, the more important or severe the event.
type Level int

// Names for common log levels.
const (
	LevelTrace Level = -8
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
	LevelOff   Level = 12
)

// Logger is an interface for handling structured log records at different
// severity levels.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NoOpLogger satisfies the Logger interface and discards all log messages.
type NoOpLogger struct{}

var _ Logger = (*NoOpLogger)(nil)

func (NoOpLogger) Trace(_ string, _ ...any) {}
func (NoOpLogger) Debug(_ string, _ ...any) {}
func (NoOpLogger) Info(_ string, _ ...any)  {}
func (NoOpLogger) Warn(_ string, _ ...any)  {}
func (NoOpLogger) Error(_ string, _ ...any) {}
