package configs

type AppConfig struct {
	Catalog    CatalogConfig    `yaml:"catalog"`
	Prometheus prometheusConfig `yaml:"prometheus"`
	Tracing    TracingConfig    `yaml:"tracing"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type CatalogConfig struct {
	BaseURL        string `yaml:"baseUrl"`
	TimeoutSeconds int    `yaml:"timeoutSeconds" default:"15"`
}

type prometheusConfig struct {
	MetricsPort int `yaml:"metricsPort"`
}

type TracingConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
}

type LoggingConfig struct {
	File string `yaml:"file"`
}
