// Package logtest adapts structured logging to test output: it provides a
// slog.Handler that routes every record through testing.TB's Log method.
//
// Code under test that takes a *slog.Logger can be handed
// logtest.Logger(t), and its log lines then follow the standard `go test`
// rules — buffered per test, shown only on failure or with -v, and
// attributed to the right subtest.
//
// # Usage
//
//	func TestWorker(t *testing.T) {
//	    w := NewWorker(logtest.Logger(t, logtest.WithLevel(slog.LevelInfo)))
//	    ...
//	}
//
// The handler renders records as single "LEVEL message key=value" lines
// without timestamps, implements the full handler contract (WithAttrs
// pre-renders static attributes, WithGroup qualifies keys), and is safe for
// concurrent use to the extent testing.TB.Log is.
package logtest
