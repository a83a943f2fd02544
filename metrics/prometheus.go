package metrics

import (
	"fmt"
	"sync"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

var (
	mutex       sync.RWMutex
	registry    *prometheus.Registry
	initialized bool

	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec
)

func getLogger(metricName, metricType string) *log.Logger {
	return log.WithFields("metricName", metricName, "metricType", metricType)
}

// Init initializes the metrics registry. When the metrics are disabled every record function is a no-op
func Init(c Config) {
	if !c.Enabled {
		return
	}
	mutex.Lock()
	if !initialized {
		registry = prometheus.NewRegistry()
		counters = make(map[string]*prometheus.CounterVec)
		histograms = make(map[string]*prometheus.HistogramVec)
		initialized = true
	}
	mutex.Unlock()

	registerMetrics()
}

// Push sends the collected metrics to the pushgateway
func Push(c Config) error {
	if !c.Enabled || !initialized {
		return nil
	}
	if c.PushGatewayURL == "" {
		return fmt.Errorf("metrics enabled but PushGatewayURL is empty")
	}
	pusher := push.New(c.PushGatewayURL, c.Job).Gatherer(registry)
	if c.Env != "" {
		pusher = pusher.Grouping(labelEnv, c.Env)
	}
	if err := pusher.Push(); err != nil {
		return fmt.Errorf("push metrics to %s: %w", c.PushGatewayURL, err)
	}
	log.Debugf("metrics pushed to %s", c.PushGatewayURL)
	return nil
}

func reset() {
	mutex.Lock()
	defer mutex.Unlock()
	registry = nil
	counters = nil
	histograms = nil
	initialized = false
}

/*
 * -------------------- Counter functions --------------------
 */

func registerCounter(opt prometheus.CounterOpts, labelNames ...string) {
	logger := getLogger(opt.Name, typeCounter)
	if !initialized {
		return
	}
	mutex.Lock()
	defer mutex.Unlock()

	if _, ok := counters[opt.Name]; ok {
		return
	}

	collector := prometheus.NewCounterVec(opt, labelNames)
	if err := registry.Register(collector); err != nil {
		logger.Errorf("metrics register error: %v", err)
		return
	}
	counters[opt.Name] = collector

	logger.Debugf("metrics register successfully")
}

func counterInc(name string, labelValues map[string]string) {
	if !initialized {
		return
	}
	mutex.RLock()
	c, ok := counters[name]
	mutex.RUnlock()
	if !ok {
		getLogger(name, typeCounter).Errorf("collector not found")
		return
	}
	c.With(labelValues).Inc()
}

/*
 * -------------------- Histogram functions --------------------
 */

func registerHistogram(opt prometheus.HistogramOpts, labelNames ...string) {
	logger := getLogger(opt.Name, typeHistogram)
	if !initialized {
		return
	}
	mutex.Lock()
	defer mutex.Unlock()

	if _, ok := histograms[opt.Name]; ok {
		return
	}

	collector := prometheus.NewHistogramVec(opt, labelNames)
	if err := registry.Register(collector); err != nil {
		logger.Errorf("metrics register error: %v", err)
		return
	}
	histograms[opt.Name] = collector

	logger.Debugf("metrics register successfully")
}

func histogramObserve(name string, value float64, labelValues map[string]string) {
	if !initialized {
		return
	}
	mutex.RLock()
	c, ok := histograms[name]
	mutex.RUnlock()
	if !ok {
		getLogger(name, typeHistogram).Errorf("collector not found")
		return
	}
	c.With(labelValues).Observe(value)
}
