// Package notify implements wms.Notifier sinks: terminal toasts, log lines,
// NATS fan-out, and an in-memory recorder.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fivetwenty-io/wms-client/internal/constants"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// Console prints notifications as one-line toasts.
type Console struct {
	mutex sync.Mutex
	out   io.Writer
}

// NewConsole creates a console notifier writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Notify implements wms.Notifier.
func (c *Console) Notify(ctx context.Context, n wms.Notification) {
	symbol := constants.CheckMarkSymbol
	if n.Severity == wms.SeverityNegative {
		symbol = constants.CrossMarkSymbol
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	_, _ = fmt.Fprintf(c.out, "%s %s\n", symbol, n.Message)
}

// Logger writes notifications to a wms.Logger.
type Logger struct {
	logger wms.Logger
}

// NewLogger creates a logger-backed notifier.
func NewLogger(logger wms.Logger) *Logger {
	return &Logger{logger: logger}
}

// Notify implements wms.Notifier.
func (l *Logger) Notify(ctx context.Context, n wms.Notification) {
	fields := map[string]interface{}{
		"severity":   string(n.Severity),
		"method":     n.Method,
		"path":       n.Path,
		"request_id": n.RequestID,
	}

	if n.Severity == wms.SeverityNegative {
		l.logger.Warn(n.Message, fields)

		return
	}

	l.logger.Info(n.Message, fields)
}

// Multi fans a notification out to several notifiers in order.
type Multi []wms.Notifier

// Notify implements wms.Notifier.
func (m Multi) Notify(ctx context.Context, n wms.Notification) {
	for _, notifier := range m {
		if notifier != nil {
			notifier.Notify(ctx, n)
		}
	}
}

// Discard drops every notification.
type Discard struct{}

// Notify implements wms.Notifier.
func (Discard) Notify(ctx context.Context, n wms.Notification) {}

// Recorder keeps every notification it receives.
type Recorder struct {
	mutex         sync.Mutex
	notifications []wms.Notification
}

// Notify implements wms.Notifier.
func (r *Recorder) Notify(ctx context.Context, n wms.Notification) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.notifications = append(r.notifications, n)
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []wms.Notification {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return append([]wms.Notification(nil), r.notifications...)
}

// Count returns how many notifications of severity were recorded.
func (r *Recorder) Count(severity wms.Severity) int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	count := 0

	for _, n := range r.notifications {
		if n.Severity == severity {
			count++
		}
	}

	return count
}

// Reset forgets every recorded notification.
func (r *Recorder) Reset() {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.notifications = nil
}

// publisher is the subset of *nats.Conn used by NATS.
type publisher interface {
	Publish(subject string, data []byte) error
}

// natsMessage is the JSON document published for every notification.
type natsMessage struct {
	wms.Notification

	Timestamp time.Time `json:"timestamp"`
}

// NATS publishes notifications as JSON on a subject so other processes
// (dashboards, desktop agents) can display them.
type NATS struct {
	conn    publisher
	subject string
	logger  wms.Logger
}

// ConnectNATS dials a NATS server for notification fan-out.
func ConnectNATS(url string) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name("wms-client"),
		nats.Timeout(constants.ShortHTTPTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	return conn, nil
}

// NewNATS creates a NATS notifier. An empty subject uses the default.
func NewNATS(conn *nats.Conn, subject string, logger wms.Logger) *NATS {
	return newNATS(conn, subject, logger)
}

func newNATS(conn publisher, subject string, logger wms.Logger) *NATS {
	if subject == "" {
		subject = constants.DefaultNATSSubject
	}

	return &NATS{conn: conn, subject: subject, logger: logger}
}

// Notify implements wms.Notifier. Publish failures are logged, never
// surfaced.
func (n *NATS) Notify(ctx context.Context, notification wms.Notification) {
	data, err := json.Marshal(natsMessage{Notification: notification, Timestamp: time.Now().UTC()})
	if err == nil {
		err = n.conn.Publish(n.subject, data)
	}

	if err != nil && n.logger != nil {
		n.logger.Warn("failed to publish notification", map[string]interface{}{
			"subject": n.subject,
			"error":   err.Error(),
		})
	}
}
