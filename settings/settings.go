// Package settings holds the runtime configuration for merklecheck,
// resolved through gocore so values can come from settings.conf,
// environment variables or defaults.
package settings

import (
	"time"
)

type Settings struct {
	ClientName    string
	LogLevel      string
	VerifyWitness bool

	RPC  RPCSettings
	HTTP HTTPSettings
}

type RPCSettings struct {
	URL      string
	Username string
	Password string
	Timeout  time.Duration
}

type HTTPSettings struct {
	ListenAddress string
}

func NewSettings() *Settings {
	return &Settings{
		ClientName:    getString("clientName", "merklecheck"),
		LogLevel:      getString("logLevel", "INFO"),
		VerifyWitness: getBool("verify_witness", true),

		RPC: RPCSettings{
			URL:      getString("rpc_url", "http://localhost:8332"),
			Username: getString("rpc_user", "bitcoin"),
			Password: getString("rpc_password", "bitcoin"),
			Timeout:  time.Duration(getInt("rpc_timeout_seconds", 30)) * time.Second,
		},

		HTTP: HTTPSettings{
			ListenAddress: getString("http_listen_address", ":8091"),
		},
	}
}
