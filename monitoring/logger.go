package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf and
// can be redirected or muted with SetLogger.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// SessionLogf returns a logger that tags every line with a short form of the
// session id. It reads Logf on each call so SetLogger still applies.
func SessionLogf(id string) func(format string, v ...interface{}) {
	tag := id
	if len(tag) > 8 {
		tag = tag[:8]
	}
	prefix := "[session " + tag + "] "
	return func(format string, v ...interface{}) {
		Logf(prefix+format, v...)
	}
}
