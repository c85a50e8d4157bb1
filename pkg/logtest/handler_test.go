package logtest_test

import (
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardkit/pkg/logtest"
)

// recorder captures Log output so tests can assert on rendered lines.
// Embedding testing.TB satisfies the interface's unexported method.
type recorder struct {
	testing.TB
	mu    sync.Mutex
	lines []string
}

func (r *recorder) Log(args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, fmt.Sprint(args...))
}

func (r *recorder) Helper() {}

func (r *recorder) captured() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

func TestHandler(t *testing.T) {
	t.Parallel()

	t.Run("renders level, message and attrs on one line", func(t *testing.T) {
		rec := &recorder{TB: t}
		log := logtest.Logger(rec)

		log.Info("user created", "id", 42, "plan", "pro")

		lines := rec.captured()
		require.Len(t, lines, 1)
		assert.Equal(t, "INFO user created id=42 plan=pro", lines[0])
	})

	t.Run("drops records below the configured level", func(t *testing.T) {
		rec := &recorder{TB: t}
		log := logtest.Logger(rec, logtest.WithLevel(slog.LevelWarn))

		log.Debug("noise")
		log.Info("noise")
		log.Warn("kept")
		log.Error("kept too")

		lines := rec.captured()
		require.Len(t, lines, 2)
		assert.Equal(t, "WARN kept", lines[0])
		assert.Equal(t, "ERROR kept too", lines[1])
	})

	t.Run("defaults to debug level", func(t *testing.T) {
		rec := &recorder{TB: t}
		logtest.Logger(rec).Debug("visible")
		require.Len(t, rec.captured(), 1)
	})

	t.Run("static attrs apply to every record", func(t *testing.T) {
		rec := &recorder{TB: t}
		log := logtest.Logger(rec, logtest.WithAttrs(slog.String("svc", "billing")))

		log.Info("first")
		log.Info("second", "n", 1)

		lines := rec.captured()
		require.Len(t, lines, 2)
		assert.Equal(t, "INFO first svc=billing", lines[0])
		assert.Equal(t, "INFO second svc=billing n=1", lines[1])
	})

	t.Run("WithGroup qualifies attribute keys", func(t *testing.T) {
		rec := &recorder{TB: t}
		log := logtest.Logger(rec).WithGroup("req")

		log.Info("handled", "id", "abc")

		lines := rec.captured()
		require.Len(t, lines, 1)
		assert.Equal(t, "INFO handled req.id=abc", lines[0])
	})

	t.Run("group-valued attrs flatten with dotted keys", func(t *testing.T) {
		rec := &recorder{TB: t}
		log := logtest.Logger(rec)

		log.Info("handled", slog.Group("req", slog.Int("id", 7), slog.String("method", "GET")))

		lines := rec.captured()
		require.Len(t, lines, 1)
		assert.Equal(t, "INFO handled req.id=7 req.method=GET", lines[0])
	})

	t.Run("logger.With keeps accumulated attrs", func(t *testing.T) {
		rec := &recorder{TB: t}
		log := logtest.Logger(rec).With("tenant", "t1")

		log.Warn("quota exceeded", "used", 110)

		lines := rec.captured()
		require.Len(t, lines, 1)
		assert.Equal(t, "WARN quota exceeded tenant=t1 used=110", lines[0])
	})

	t.Run("empty attrs are skipped", func(t *testing.T) {
		rec := &recorder{TB: t}
		log := logtest.Logger(rec)

		log.Info("bare", slog.Attr{})

		lines := rec.captured()
		require.Len(t, lines, 1)
		assert.Equal(t, "INFO bare", lines[0])
	})

	t.Run("usable with the real testing.T", func(t *testing.T) {
		// Smoke check: output goes through t.Log and shows up only on
		// failure or under -v.
		log := logtest.Logger(t, logtest.WithLevel(slog.LevelInfo))
		log.Info("wired into the test runner")
	})
}
