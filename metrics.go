package validator

import "github.com/prometheus/client_golang/prometheus"

// Lookup outcome labels.
const (
	outcomeOK       = "ok"
	outcomeNoRecord = "no_record"
	outcomeError    = "error"
)

var (
	lookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dmarc_validator",
			Name:      "lookups_total",
			Help:      "DMARC lookups performed, by outcome",
		},
		[]string{"outcome"},
	)
	queryDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "dmarc_validator",
			Name:      "dns_query_duration_seconds",
			Help:      "Duration of DNS TXT queries for successful lookups",
			Buckets:   prometheus.DefBuckets,
		},
	)
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dmarc_validator",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests served, by status code",
		},
		[]string{"code"},
	)
)

func init() {
	prometheus.MustRegister(lookupsTotal)
	prometheus.MustRegister(queryDuration)
	prometheus.MustRegister(httpRequestsTotal)
}
