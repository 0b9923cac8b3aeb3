package logging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("debug"))
	assert.Equal(t, logrus.InfoLevel, GetLevel("INFO"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warn"))
	assert.Equal(t, logrus.ErrorLevel, GetLevel("error"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("whatever"))
}

func TestSentryLevel(t *testing.T) {
	assert.Equal(t, sentry.LevelFatal, sentryLevel(logrus.PanicLevel))
	assert.Equal(t, sentry.LevelFatal, sentryLevel(logrus.FatalLevel))
	assert.Equal(t, sentry.LevelError, sentryLevel(logrus.ErrorLevel))
	assert.Equal(t, sentry.LevelWarning, sentryLevel(logrus.WarnLevel))
	assert.Equal(t, sentry.LevelDebug, sentryLevel(logrus.TraceLevel))
}

func TestSentryHook_Fire(t *testing.T) {
	transport := &recordingTransport{}
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:       "https://public@sentry.example.com/1",
		Transport: transport,
	})
	require.NoError(t, err)

	hook := NewSentryHook([]logrus.Level{logrus.ErrorLevel})
	hook.hub = sentry.NewHub(client, sentry.NewScope())
	assert.Equal(t, []logrus.Level{logrus.ErrorLevel}, hook.Levels())

	entry := logrus.NewEntry(logrus.StandardLogger()).WithFields(logrus.Fields{
		"member_id":     5,
		logrus.ErrorKey: errors.New("tx aborted"),
	})
	entry.Level = logrus.ErrorLevel
	entry.Message = "log meal failed"

	require.NoError(t, hook.Fire(entry))
	require.Len(t, transport.events, 1)

	ev := transport.events[0]
	assert.Equal(t, "log meal failed", ev.Message)
	assert.Equal(t, sentry.LevelError, ev.Level)
	assert.Equal(t, 5, ev.Extra["member_id"])
	require.Len(t, ev.Exception, 1)
	assert.Equal(t, "tx aborted", ev.Exception[0].Value)
}

type recordingTransport struct {
	events []*sentry.Event
}

func (r *recordingTransport) Configure(sentry.ClientOptions)        {}
func (r *recordingTransport) SendEvent(event *sentry.Event)         { r.events = append(r.events, event) }
func (r *recordingTransport) Flush(_ time.Duration) bool            { return true }
func (r *recordingTransport) FlushWithContext(context.Context) bool { return true }
func (r *recordingTransport) Close()                                {}
