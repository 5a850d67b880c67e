package config

type ClusterConfig struct {
	Auth     *Auth
	ClientID string
	Version  string
	Brokers  []string
}

type Auth struct {
	Username     string
	Password     string
	Certificates []string
}
