package obs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(&buf, "WARN")
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger = NewLogger(&buf, "chatty")
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNewLoggerLeavesGlobalsAlone(t *testing.T) {
	assert.Equal(t, time.RFC3339Nano, zerolog.TimeFieldFormat)
	assert.Equal(t, time.Millisecond, zerolog.DurationFieldUnit)

	prev := zerolog.TimeFieldFormat
	zerolog.TimeFieldFormat = time.RFC1123
	t.Cleanup(func() { zerolog.TimeFieldFormat = prev })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = NewLogger(io.Discard, "debug")
		}()
	}
	wg.Wait()

	assert.Equal(t, time.RFC1123, zerolog.TimeFieldFormat)
}

func TestTimeLogsErrorWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "debug").With().Str("req_id", "abc").Logger()
	ctx := logger.WithContext(context.Background())

	err := errors.New("boom")
	Time(ctx, "places.GetMany")(&err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["req_id"])
	assert.Equal(t, "places.GetMany", entry["op"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "warn", entry["level"])
}

func TestTimeWithoutLogger(t *testing.T) {
	var err error
	assert.NotPanics(t, func() { Time(context.Background(), "noop")(&err) })
	assert.NotPanics(t, func() { Time(context.Background(), "noop")(nil) })
}
