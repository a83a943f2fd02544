package metrics

// Config represents the configuration of the run metrics
type Config struct {
	Enabled bool `mapstructure:"Enabled"`

	// PushGatewayURL is the prometheus pushgateway the run metrics are pushed to once the run ends
	PushGatewayURL string `mapstructure:"PushGatewayURL"`

	// Job is the job name the metrics are grouped by in the pushgateway
	Job string `mapstructure:"Job"`

	// Env is the environment label for the metrics, to separate mainnet and testnet metrics
	Env string `mapstructure:"Env"`
}
