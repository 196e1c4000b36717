package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out), "logger output should be valid JSON")
	return out
}

func TestNewWithWriter_StructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info().Str("merchant_id", "m-1").Str("transaction_id", "T1").Msg("verification succeeded")

	out := decodeLine(t, &buf)
	assert.Equal(t, "verification succeeded", out["message"])
	assert.Equal(t, "m-1", out["merchant_id"])
	assert.Equal(t, "info", out["level"])
	assert.Contains(t, out, "time")
	assert.NotContains(t, out, "service")
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	log := Component(NewWithWriter("debug", &buf), "bep20_verifier")

	log.Debug().Msg("explorer lookup failed, trying deposit history")

	out := decodeLine(t, &buf)
	assert.Equal(t, "bep20_verifier", out["component"])
	assert.Equal(t, "debug", out["level"])
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, false},
		{"error", false, false},
		{" WARN ", false, false},
		{"nonsense", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(tt.level, &buf)

			log.Debug().Msg("d")
			assert.Equal(t, tt.debugSeen, buf.Len() > 0)

			buf.Reset()
			log.Info().Msg("i")
			assert.Equal(t, tt.infoSeen, buf.Len() > 0)
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, parseLevel("trace"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
}

func TestNew_PrettyMode(t *testing.T) {
	// Pretty mode writes to stdout; only checks it does not panic.
	log := New("verifier-api", "info", true)
	log.Info().Msg("pretty mode test")
}
