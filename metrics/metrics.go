package metrics

import (
	"context"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ReservationsCreated prometheus.Counter
	MenuMutations       *prometheus.CounterVec
	ImageUploads        *prometheus.CounterVec
	AdminAccessDenied   *prometheus.CounterVec
}

// New registers every collector on a fresh registry, so several instances
// can coexist in one process.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "restaurant_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "restaurant_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ReservationsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "restaurant_reservations_created_total",
			Help: "Reservations submitted through the public form",
		}),
		MenuMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "restaurant_menu_mutations_total",
			Help: "Admin menu writes by operation and result",
		}, []string{"op", "result"}),
		ImageUploads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "restaurant_image_uploads_total",
			Help: "Menu image uploads by result",
		}, []string{"result"}),
		AdminAccessDenied: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "restaurant_admin_access_denied_total",
			Help: "Admin requests turned away by the session guard",
		}, []string{"verdict"}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

func (m *Metrics) ObserveMenuMutation(op string, err error) {
	m.MenuMutations.WithLabelValues(op, result(err)).Inc()
}

type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

type countingUploader struct {
	next Uploader
	m    *Metrics
}

func (u countingUploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	url, err := u.next.Upload(ctx, filename, contentType, body)
	u.m.ImageUploads.WithLabelValues(result(err)).Inc()
	return url, err
}

// CountUploads wraps u so every upload is counted by result.
func (m *Metrics) CountUploads(u Uploader) Uploader {
	return countingUploader{next: u, m: m}
}
