package logger

import "go.uber.org/zap"

// Log is the process-wide structured logger. It defaults to a no-op so
// library code and tests stay silent unless Init runs.
var Log = zap.NewNop()

// Init replaces the global logger. Development mode enables console
// encoding and debug level.
func Init(development bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if development {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// Sync flushes buffered log entries; call before process exit.
func Sync() {
	_ = Log.Sync()
}
