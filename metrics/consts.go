package metrics

// Metric types
const (
	typeCounter   = "counter"
	typeHistogram = "histogram"
)

// Metric names and labels
const (
	prefix   = "token_bridger_"
	labelEnv = "env"

	prefixRequest        = prefix + "rpc_request_"
	metricRequestCount   = prefixRequest + "count"
	metricRequestLatency = prefixRequest + "latency_ms"
	labelChain           = "chain"
	labelMethod          = "method"
	labelIsSuccess       = "is_success"

	prefixTx                = prefix + "tx_"
	metricTxSubmittedCount  = prefixTx + "submitted_count"
	metricTxReceiptWaitTime = prefixTx + "receipt_wait_time_sec"
	labelKind               = "kind"

	metricRunCount = prefix + "run_count"
	labelStatus    = "status"
)
