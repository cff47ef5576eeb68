package stats

import (
	"bufio"
	"os"
	"path/filepath"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const (
	BYTE = 1 << (10 * iota)
	KILOBYTE
	MEGABYTE
	GIGABYTE
)

const (
	namespace = "bisq"
	subsystem = "offer"

	statsFilename = "stats"
)

var (
	offerCreations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "creations_total",
		Help:      "Number of offer creation requests by final state.",
	}, []string{"state"})

	makerFees = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "maker_fees_total",
		Help:      "Number of maker fees resolved by fee currency.",
	}, []string{"currency"})

	makerFeeAmounts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "maker_fee_amount_total",
		Help:      "Sum of the maker fees resolved, in minor units, by fee currency.",
	}, []string{"currency"})

	broadcasts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "broadcasts_total",
		Help:      "Number of offer book notifications by outcome.",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(offerCreations, makerFees, makerFeeAmounts, broadcasts)
}

// RecordOfferCreation counts an offer creation request that reached the
// given terminal state.
func RecordOfferCreation(state string) {
	offerCreations.WithLabelValues(state).Inc()
}

// RecordMakerFee counts a resolved maker fee.
func RecordMakerFee(currency string, amount uint64) {
	makerFees.WithLabelValues(currency).Inc()
	makerFeeAmounts.WithLabelValues(currency).Add(float64(amount))
}

// RecordBroadcast counts a notification sent to an offer book endpoint.
func RecordBroadcast(success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	broadcasts.WithLabelValues(outcome).Inc()
}

// toMegabytes returns given memory in bytes to megabytes.
func toMegabytes(bytes uint64) float64 {
	return float64(bytes) / MEGABYTE
}

// PrintMemoryStatistics prints memory statistics using go runtime library.
func PrintMemoryStatistics() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	log.Debugf(
		"Total allocated: %.3fMB, Heap allocated: %.3fMB, "+
			"Allocated objects count: %v, Freed objects count: %v, "+
			"Num of go routines: %v",
		toMegabytes(memStats.TotalAlloc),
		toMegabytes(memStats.HeapAlloc),
		memStats.Mallocs,
		memStats.Frees,
		runtime.NumGoroutine(),
	)
}

// DumpPrometheusDefaults appends the gathered Prometheus metrics to the
// stats file in the given directory.
func DumpPrometheusDefaults(dir string) error {
	file, err := os.OpenFile(
		filepath.Join(dir, statsFilename),
		os.O_APPEND|os.O_CREATE|os.O_RDWR,
		0644,
	)
	if err != nil {
		return err
	}
	defer file.Close()

	metricFamily, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(file)
	for _, v := range metricFamily {
		if _, err := writer.WriteString(v.String() + "\n"); err != nil {
			return err
		}
	}
	return writer.Flush()
}
