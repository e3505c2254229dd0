package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	StoreQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "pratoaberto", Name: "store_queries_total", Help: "Number of document-store operations by collection and operation."},
		[]string{"collection", "op"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "pratoaberto", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "pratoaberto", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(StoreQueries)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
