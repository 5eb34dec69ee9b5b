package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shop"

// Registry owns the Prometheus collectors of the service. Each instance has
// its own prometheus.Registry so tests can build as many as they need.
type Registry struct {
	registry *prometheus.Registry

	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	orders         *prometheus.CounterVec
	stockDecrement prometheus.Counter
	droppedItems   prometheus.Counter
}

func New() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		orders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_total",
			Help:      "Order operations by outcome.",
		}, []string{"operation", "outcome"}),
		stockDecrement: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "product_stock_decrements_total",
			Help:      "Units removed from product stock by order submissions.",
		}),
		droppedItems: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_unresolved_products_total",
			Help:      "Submitted product ids dropped because they did not resolve.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.httpRequests,
		r.httpDuration,
		r.orders,
		r.stockDecrement,
		r.droppedItems,
	)

	return r
}

func (r *Registry) ObserveRequest(method, route, status string, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, status).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// OrderOperation counts an order create/update/delete with its outcome
// (ok, rejected, not_found, error).
func (r *Registry) OrderOperation(operation, outcome string) {
	r.orders.WithLabelValues(operation, outcome).Inc()
}

func (r *Registry) StockDecremented(n int) {
	r.stockDecrement.Add(float64(n))
}

func (r *Registry) UnresolvedProducts(n int) {
	r.droppedItems.Add(float64(n))
}

// Handler exposes the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer is used by tests to read collected values.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
