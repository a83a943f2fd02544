package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func registerMetrics() {
	registerCounter(prometheus.CounterOpts{Name: metricRequestCount}, labelChain, labelMethod, labelIsSuccess)
	registerHistogram(prometheus.HistogramOpts{Name: metricRequestLatency, Buckets: prometheus.ExponentialBuckets(10, 2, 12)}, labelChain, labelMethod, labelIsSuccess) //nolint:gomnd
	registerCounter(prometheus.CounterOpts{Name: metricTxSubmittedCount}, labelKind)
	registerHistogram(prometheus.HistogramOpts{Name: metricTxReceiptWaitTime, Buckets: prometheus.ExponentialBuckets(1, 2, 10)}, labelKind) //nolint:gomnd
	registerCounter(prometheus.CounterOpts{Name: metricRunCount}, labelStatus)
}

// RecordRequest records one rpc request against a chain and its latency
func RecordRequest(chain, method string, latency time.Duration, isSuccess bool) {
	labels := map[string]string{labelChain: chain, labelMethod: method, labelIsSuccess: strconv.FormatBool(isSuccess)}
	counterInc(metricRequestCount, labels)
	histogramObserve(metricRequestLatency, float64(latency/time.Millisecond), labels)
}

// RecordTxSubmitted increments the submitted tx count for the kind of tx (approve, outbound_transfer)
func RecordTxSubmitted(kind string) {
	counterInc(metricTxSubmittedCount, map[string]string{labelKind: kind})
}

// RecordReceiptWaitTime records how long a tx took to be mined
func RecordReceiptWaitTime(kind string, dur time.Duration) {
	histogramObserve(metricTxReceiptWaitTime, dur.Seconds(), map[string]string{labelKind: kind})
}

// RecordRun records the final status of a bridger run
func RecordRun(status string) {
	counterInc(metricRunCount, map[string]string{labelStatus: status})
}
