package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

var errPublish = errors.New("connection closed")

type fakePublisher struct {
	subjects []string
	payloads [][]byte
	err      error
}

func (p *fakePublisher) Publish(subject string, data []byte) error {
	p.subjects = append(p.subjects, subject)
	p.payloads = append(p.payloads, data)

	return p.err
}

type recordingLogger struct {
	warnings []string
	infos    []string
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {
	l.infos = append(l.infos, msg)
}
func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.warnings = append(l.warnings, msg)
}
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {}

func TestConsole(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	console := NewConsole(&buf)
	console.Notify(context.Background(), wms.Notification{Message: "Created", Severity: wms.SeverityPositive})
	console.Notify(context.Background(), wms.Notification{Message: "DB down", Severity: wms.SeverityNegative})

	assert.Equal(t, "✓ Created\n✗ DB down\n", buf.String())
}

func TestLoggerNotifier(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	notifier := NewLogger(logger)

	notifier.Notify(context.Background(), wms.Notification{Message: "Created", Severity: wms.SeverityPositive})
	notifier.Notify(context.Background(), wms.Notification{Message: "DB down", Severity: wms.SeverityNegative})

	assert.Equal(t, []string{"Created"}, logger.infos)
	assert.Equal(t, []string{"DB down"}, logger.warnings)
}

func TestMultiAndRecorder(t *testing.T) {
	t.Parallel()

	first := &Recorder{}
	second := &Recorder{}

	multi := Multi{first, nil, second, Discard{}}
	multi.Notify(context.Background(), wms.Notification{Message: "a", Severity: wms.SeverityNegative})
	multi.Notify(context.Background(), wms.Notification{Message: "b", Severity: wms.SeverityPositive})

	assert.Len(t, first.All(), 2)
	assert.Equal(t, 1, second.Count(wms.SeverityNegative))
	assert.Equal(t, 1, second.Count(wms.SeverityPositive))

	first.Reset()
	assert.Empty(t, first.All())
}

func TestNATS(t *testing.T) {
	t.Parallel()

	t.Run("publishes json on the default subject", func(t *testing.T) {
		t.Parallel()

		pub := &fakePublisher{}
		notifier := newNATS(pub, "", nil)

		notifier.Notify(context.Background(), wms.Notification{
			Message:   "Created",
			Severity:  wms.SeverityPositive,
			Method:    "POST",
			Path:      "inbound",
			RequestID: "req-1",
		})

		require.Len(t, pub.payloads, 1)
		assert.Equal(t, "wms.notifications", pub.subjects[0])

		var decoded map[string]interface{}

		require.NoError(t, json.Unmarshal(pub.payloads[0], &decoded))
		assert.Equal(t, "Created", decoded["message"])
		assert.Equal(t, "positive", decoded["severity"])
		assert.Equal(t, "inbound", decoded["path"])
		assert.Equal(t, "req-1", decoded["request_id"])
		assert.NotEmpty(t, decoded["timestamp"])
	})

	t.Run("logs publish failures", func(t *testing.T) {
		t.Parallel()

		pub := &fakePublisher{err: errPublish}
		logger := &recordingLogger{}
		notifier := newNATS(pub, "custom.subject", logger)

		notifier.Notify(context.Background(), wms.Notification{Message: "x", Severity: wms.SeverityNegative})

		assert.Equal(t, []string{"custom.subject"}, pub.subjects)
		assert.Equal(t, []string{"failed to publish notification"}, logger.warnings)
	})
}
