package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records storefront order activity.
type CheckoutMetrics struct {
	ordersCreated    *prometheus.CounterVec
	checkoutFailures *prometheus.CounterVec
	orderValue       prometheus.Histogram
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	ordersCreated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Orders accepted at checkout.",
	}, []string{"status"})
	checkoutFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_failures_total",
		Help: "Checkout attempts rejected before order creation.",
	}, []string{"reason"})
	orderValue := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_value",
		Help:    "Total amount of accepted orders.",
		Buckets: prometheus.ExponentialBuckets(10, 2, 10),
	})
	reg.MustRegister(ordersCreated, checkoutFailures, orderValue)
	return &CheckoutMetrics{
		ordersCreated:    ordersCreated,
		checkoutFailures: checkoutFailures,
		orderValue:       orderValue,
	}
}

// IncOrderCreated increments the created counter for the given order status.
func (c *CheckoutMetrics) IncOrderCreated(status string) {
	if c == nil || c.ordersCreated == nil {
		return
	}
	c.ordersCreated.WithLabelValues(normalizeLabel(status)).Inc()
}

// IncCheckoutFailure increments the failure counter for the named reason.
func (c *CheckoutMetrics) IncCheckoutFailure(reason string) {
	if c == nil || c.checkoutFailures == nil {
		return
	}
	c.checkoutFailures.WithLabelValues(normalizeLabel(reason)).Inc()
}

// ObserveOrderValue records the total amount of an accepted order.
func (c *CheckoutMetrics) ObserveOrderValue(amount float64) {
	if c == nil || c.orderValue == nil {
		return
	}
	c.orderValue.Observe(amount)
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
