// Package metrics exposes Prometheus collectors for the request pipeline.
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fivetwenty-io/wms-client/internal/constants"
	"github.com/fivetwenty-io/wms-client/pkg/wms"
)

// Collector records in-flight requests, responses and notifications.
type Collector struct {
	inFlight      prometheus.Gauge
	loading       prometheus.Gauge
	responses     *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	notifications *prometheus.CounterVec
}

// NewCollector registers the collectors on reg. A nil reg creates
// unregistered collectors.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "inflight_requests",
			Help:      "Requests dispatched and not yet settled.",
		}),
		loading: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "loading",
			Help:      "1 while the client reports a loading state.",
		}),
		responses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "responses_total",
			Help:      "Settled calls by operation, status code and outcome.",
		}, []string{"operation", "status", "outcome"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "request_duration_seconds",
			Help:      "Time from dispatch to settlement.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "notifications_total",
			Help:      "User-facing notifications by severity.",
		}, []string{"severity"}),
	}
}

// ObserveSession mirrors the session counter; register it with
// session.State.OnChange.
func (c *Collector) ObserveSession(inFlight int, loading bool) {
	c.inFlight.Set(float64(inFlight))

	if loading {
		c.loading.Set(1)
	} else {
		c.loading.Set(0)
	}
}

// RequestInterceptor records the dispatch time.
func (c *Collector) RequestInterceptor() wms.RequestInterceptor {
	return func(ctx context.Context, req *wms.Request) error {
		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		req.Metadata[wms.MetadataStartTime] = time.Now()

		return nil
	}
}

// ResponseInterceptor counts the settled call and observes its latency.
func (c *Collector) ResponseInterceptor() wms.ResponseInterceptor {
	return func(ctx context.Context, req *wms.Request, resp *wms.Response) error {
		operation := string(req.Operation())
		if operation == "" {
			operation = req.Method + " " + req.Path
		}

		outcome := "ok"
		if resp.Error != nil {
			outcome = "error"
		}

		c.responses.WithLabelValues(operation, strconv.Itoa(resp.StatusCode), outcome).Inc()

		if startTime, ok := req.Metadata[wms.MetadataStartTime].(time.Time); ok {
			c.latency.WithLabelValues(operation).Observe(time.Since(startTime).Seconds())
		}

		return nil
	}
}

// Notifier counts notifications before handing them to next.
func (c *Collector) Notifier(next wms.Notifier) wms.Notifier {
	return wms.NotifierFunc(func(ctx context.Context, n wms.Notification) {
		c.notifications.WithLabelValues(string(n.Severity)).Inc()

		if next != nil {
			next.Notify(ctx, n)
		}
	})
}
