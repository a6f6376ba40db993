package core

// Person identifies the authenticated account an error or event relates to;
// loggers may use it to tag reports.
type Person struct {
	ID       string
	Username string
	Email    string
}

// Logger is the application-wide logging contract. Implementations decide
// where entries go (stdout, Rollbar, ...).
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
