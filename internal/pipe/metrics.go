package pipe

import "github.com/prometheus/client_golang/prometheus"

var (
	envelopesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "datapipe",
			Subsystem: "stream",
			Name:      "envelopes_total",
			Help:      "Total number of envelopes delivered to observers",
		},
		[]string{"source"},
	)

	droppedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "datapipe",
			Subsystem: "stream",
			Name:      "dropped_total",
			Help:      "Envelopes generated while no observer was attached",
		},
		[]string{"source"},
	)

	terminalTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "datapipe",
			Subsystem: "stream",
			Name:      "terminal_total",
			Help:      "Terminal notifications by kind (completed, error)",
		},
		[]string{"source", "kind"},
	)

	runningGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "datapipe",
			Subsystem: "stream",
			Name:      "running",
			Help:      "Generation loops currently running",
		},
		[]string{"source"},
	)
)

func init() {
	prometheus.MustRegister(envelopesTotal, droppedTotal, terminalTotal, runningGauge)
}
