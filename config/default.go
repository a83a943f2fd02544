package config

// DefaultValues is the default configuration
const DefaultValues = `
[Log]
Level = "info"
Outputs = ["stdout"]

[Etherman]
L1URL = ""
L2URL = ""
PollInterval = "1s"
ReceiptTimeout = "10m"

[Bridger]
PrivateKey = ""
Amount = "1"
Recipient = "0x0000000000000000000000000000000000000000"
CallHookData = "0x"
L1GasLimit = 300000
L2GasLimit = 500000
FeeMarginPercent = 10
	[Bridger.Keystore]
	Path = ""
	Password = ""

[Metrics]
Enabled = false
PushGatewayURL = ""
Job = "token-bridger"
Env = ""
`
