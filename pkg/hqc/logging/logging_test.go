package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	msgs []string
}

func (l *recordingLogger) Debug(ctx context.Context, msg string, args ...any) { l.msgs = append(l.msgs, msg) }
func (l *recordingLogger) Info(ctx context.Context, msg string, args ...any)  { l.msgs = append(l.msgs, msg) }
func (l *recordingLogger) Warn(ctx context.Context, msg string, args ...any)  { l.msgs = append(l.msgs, msg) }
func (l *recordingLogger) Error(ctx context.Context, msg string, args ...any) { l.msgs = append(l.msgs, msg) }
func (l *recordingLogger) With(args ...any) Logger                           { return l }

func TestCustomLoggerImplementsInterface(t *testing.T) {
	var logger Logger = &recordingLogger{}
	logger.Info(context.Background(), "key pair generated", "level", "HQC-128")
	rl := logger.(*recordingLogger)
	require.Equal(t, []string{"key pair generated"}, rl.msgs)
}

func TestNewDefaultsToSlogDefault(t *testing.T) {
	logger := New(nil)
	require.NotNil(t, logger)
	// Must not panic without a handler wired up.
	logger.Debug(context.Background(), "decapsulating", "level", "HQC-192")
}

func TestRedactedPlaceholder(t *testing.T) {
	attr := Redacted("shared_secret")
	require.Equal(t, "shared_secret", attr.Key)
	require.Equal(t, Placeholder(), attr.Value.String())
}
