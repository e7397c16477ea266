package slashingprotection

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "slashingprotection")

var (
	verdictsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "validator",
			Subsystem: "slashing_protection",
			Name:      "verdicts_total",
			Help:      "Count of check_and_record verdicts by message kind and verdict kind.",
		},
		[]string{"message", "verdict"},
	)
	rejectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "validator",
			Subsystem: "slashing_protection",
			Name:      "rejections_total",
			Help:      "Count of slashable rejections by message kind and reject kind.",
		},
		[]string{"message", "kind"},
	)
)

func init() {
	for _, c := range []prometheus.Collector{verdictsTotal, rejectionsTotal} {
		if err := prometheus.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				log.WithError(err).Warn("Could not register slashing protection metric")
			}
		}
	}
}

func observeVerdict(message string, v Verdict) {
	verdictsTotal.WithLabelValues(message, v.Kind.String()).Inc()
	if v.Kind == VerdictSlashable {
		rejectionsTotal.WithLabelValues(message, v.RejectKind.String()).Inc()
	}
}
