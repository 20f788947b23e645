package logger

// Logger defines the logging interface used across the service.
//
// Arguments are either concatenated into a single message, or, when the first
// argument is a string followed by key/value pairs, emitted as structured
// attributes:
//
//	log.Info("Created project with id ", id)
//	log.Info("request completed", "status", 200, "path", "/api/projects")
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
