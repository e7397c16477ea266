package kv

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prysmaticlabs/prombbolt"
	bolt "go.etcd.io/bbolt"
)

// registerBoltMetrics exposes db's internal bbolt statistics (page counts,
// transaction stats, free list size) as Prometheus metrics, the same
// collector the teacher registers for every bbolt-backed store it opens.
// Registration failures (e.g. re-opening a store with the same path inside
// one process, such as in tests) are logged and otherwise ignored: metrics
// are an observability nicety, never a condition that should block opening
// the store.
func registerBoltMetrics(db *bolt.DB, name string) {
	collector := prombbolt.New(db)
	if err := prometheus.Register(collector); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			log.WithError(err).WithField("store", name).Warn("Could not register bbolt metrics collector")
		}
	}
}
