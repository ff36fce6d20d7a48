package configs

// Metrics configures the Prometheus endpoint. When Enabled is false no
// metrics are collected and Path is not routed.
type Metrics struct {
	Enabled   bool   `env:"ENABLED" envDefault:"true"`
	Path      string `env:"PATH" envDefault:"/metrics"`
	Namespace string `env:"NAMESPACE" envDefault:"campaigns"`
}
