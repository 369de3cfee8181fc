package client

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrijs2005/postkeeper/internal/client/models"
)

// Metrics holds the collectors used by Instrument.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the client collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "postkeeper_client_requests_total",
				Help: "Total number of remote post service calls",
			},
			[]string{"operation", "status"},
		),
		duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "postkeeper_client_request_duration_seconds",
				Help:    "Duration of remote post service calls in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"operation"},
		),
	}
}

func (m *Metrics) observe(op string, start time.Time, err error) {
	m.requests.WithLabelValues(op, statusLabel(err)).Inc()
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func statusLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}

type instrumented struct {
	next    Client
	metrics *Metrics
}

// Instrument wraps next so every call is counted and timed in m.
func Instrument(next Client, m *Metrics) Client {
	return &instrumented{next: next, metrics: m}
}

func (c *instrumented) ListMine(ctx context.Context, page int) (p *models.Page, err error) {
	defer func(start time.Time) { c.metrics.observe("list_mine", start, err) }(time.Now())
	return c.next.ListMine(ctx, page)
}

func (c *instrumented) Search(ctx context.Context, query string) (posts []models.Post, err error) {
	defer func(start time.Time) { c.metrics.observe("search", start, err) }(time.Now())
	return c.next.Search(ctx, query)
}

func (c *instrumented) DeletePost(ctx context.Context, id string) (err error) {
	defer func(start time.Time) { c.metrics.observe("delete_post", start, err) }(time.Now())
	return c.next.DeletePost(ctx, id)
}

func (c *instrumented) UpdateProfile(ctx context.Context, p models.Profile) (err error) {
	defer func(start time.Time) { c.metrics.observe("update_profile", start, err) }(time.Now())
	return c.next.UpdateProfile(ctx, p)
}

func (c *instrumented) Close() error {
	return c.next.Close()
}
