package config

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetStorageConfig() (*StorageData, error)
	GetHTTPConfig() (*HTTPData, error)
	GetChartConfig() (*ChartData, error)

	// Configuration management (for future SQLite-specific operations)
	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Storage StorageData `json:"storage,omitempty"`
	HTTP    HTTPData    `json:"http,omitempty"`
	Chart   ChartData   `json:"chart,omitempty"`
}

// StorageData holds the configuration for the measurement database
type StorageData struct {
	Postgres *PostgresData `json:"postgres,omitempty"`
}

// PostgresData holds the Postgres connection settings
type PostgresData struct {
	ConnectionString string `json:"connection_string"`
}

// HTTPData holds the configuration for the REST API server
type HTTPData struct {
	Cert       string `json:"cert,omitempty"`
	Key        string `json:"key,omitempty"`
	Port       int    `json:"port,omitempty"`
	ListenAddr string `json:"listen_addr,omitempty"`
	EnableCORS bool   `json:"enable_cors,omitempty"`
}

// ChartData holds the defaults for chart assembly
type ChartData struct {
	PeakDeltaFraction float64      `json:"peak_delta_fraction,omitempty"`
	FavorableBand     float64      `json:"favorable_band,omitempty"`
	DateLocale        string       `json:"date_locale,omitempty"`
	Tooltip           *TooltipData `json:"tooltip,omitempty"`
}

// TooltipData holds the tooltip sizing and placement constants
type TooltipData struct {
	CharWidth  float64 `json:"char_width,omitempty"`
	LineHeight float64 `json:"line_height,omitempty"`
	PadY       float64 `json:"pad_y,omitempty"`
	MinWidth   float64 `json:"min_width,omitempty"`
	MaxWidth   float64 `json:"max_width,omitempty"`
	Gap        float64 `json:"gap,omitempty"`
}

// Defaults for chart assembly when the configuration leaves them unset.
const (
	DefaultPeakDeltaFraction = 0.20
	DefaultFavorableBand     = 0.10
	DefaultDateLocale        = "day-first"
	DefaultHTTPPort          = 8080
)

// ApplyDefaults fills in unset chart and HTTP settings
func (c *ConfigData) ApplyDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = DefaultHTTPPort
	}
	if c.Chart.PeakDeltaFraction == 0 {
		c.Chart.PeakDeltaFraction = DefaultPeakDeltaFraction
	}
	if c.Chart.FavorableBand == 0 {
		c.Chart.FavorableBand = DefaultFavorableBand
	}
	if c.Chart.DateLocale == "" {
		c.Chart.DateLocale = DefaultDateLocale
	}
}
