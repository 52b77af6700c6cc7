package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T, fn func()) map[string]interface{} {
	t.Helper()
	var buf bytes.Buffer
	std := logrus.StandardLogger()
	prevOut, prevFormatter, prevLevel := std.Out, std.Formatter, std.Level
	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetFormatter(prevFormatter)
		std.SetLevel(prevLevel)
	})
	std.SetOutput(&buf)
	std.SetFormatter(&logrus.JSONFormatter{})
	std.SetLevel(logrus.InfoLevel)

	fn()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestWithContext(t *testing.T) {
	t.Run("tags principal and request id", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UsernameKey, "admin")
		ctx = context.WithValue(ctx, RoleKey, "admin")
		ctx = context.WithValue(ctx, RequestIDKey, "req-1")

		entry := captureLog(t, func() {
			WithContext(ctx).WithField("campaign_id", "c1").Info("campaign created")
		})

		assert.Equal(t, "admin", entry["user"])
		assert.Equal(t, "admin", entry["role"])
		assert.Equal(t, "req-1", entry["request_id"])
		assert.Equal(t, "c1", entry["campaign_id"])
		assert.Equal(t, "campaign created", entry["msg"])
	})

	t.Run("falls back to unknown user", func(t *testing.T) {
		entry := captureLog(t, func() {
			WithContext(context.Background()).Info("anonymous")
		})

		assert.Equal(t, "unknown", entry["user"])
		_, hasRole := entry["role"]
		assert.False(t, hasRole)
	})
}
