// Package util holds helpers shared by astdebug tests.
package util

import (
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/grafana/astdebug/internal/logging"
	"github.com/stretchr/testify/require"
)

// TestLogger generates a logfmt logger for a test. Entries are written
// through t.Log so they only show up for failing or verbose runs.
func TestLogger(t testing.TB) log.Logger {
	t.Helper()

	l, err := logging.New(testWriter{t}, logging.Options{
		Level:  logging.LevelDebug,
		Format: logging.FormatLogfmt,
	})
	require.NoError(t, err)
	return l
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
