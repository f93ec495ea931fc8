package notifiers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// logRecorder collects the JSON records written by a zerolog logger.
type logRecorder struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (r *logRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Write(p)
}

// records returns every record, optionally filtered by level.
func (r *logRecorder) records(t *testing.T, level string) []map[string]any {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(r.buf.Bytes()))
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		if level == "" || rec["level"] == level {
			out = append(out, rec)
		}
	}
	return out
}

func newTestLogger() (*zerolog.Logger, *logRecorder) {
	rec := &logRecorder{}
	l := zerolog.New(rec)
	return &l, rec
}
