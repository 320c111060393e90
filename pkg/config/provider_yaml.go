package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		Storage StorageYAML `yaml:"storage,omitempty"`
		HTTP    HTTPYAML    `yaml:"http,omitempty"`
		Chart   ChartYAML   `yaml:"chart,omitempty"`
	}

	err = yaml.Unmarshal(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	// Convert to our internal format
	config := &ConfigData{}

	if yamlConfig.Storage.Postgres != nil {
		config.Storage.Postgres = &PostgresData{
			ConnectionString: yamlConfig.Storage.Postgres.ConnectionString,
		}
	}

	config.HTTP = HTTPData{
		Cert:       yamlConfig.HTTP.Cert,
		Key:        yamlConfig.HTTP.Key,
		Port:       yamlConfig.HTTP.Port,
		ListenAddr: yamlConfig.HTTP.ListenAddr,
		EnableCORS: yamlConfig.HTTP.EnableCORS,
	}

	config.Chart = ChartData{
		PeakDeltaFraction: yamlConfig.Chart.PeakDeltaFraction,
		FavorableBand:     yamlConfig.Chart.FavorableBand,
		DateLocale:        yamlConfig.Chart.DateLocale,
	}
	if yamlConfig.Chart.Tooltip != nil {
		config.Chart.Tooltip = &TooltipData{
			CharWidth:  yamlConfig.Chart.Tooltip.CharWidth,
			LineHeight: yamlConfig.Chart.Tooltip.LineHeight,
			PadY:       yamlConfig.Chart.Tooltip.PadY,
			MinWidth:   yamlConfig.Chart.Tooltip.MinWidth,
			MaxWidth:   yamlConfig.Chart.Tooltip.MaxWidth,
			Gap:        yamlConfig.Chart.Tooltip.Gap,
		}
	}

	config.ApplyDefaults()

	y.config = config
	return config, nil
}

// GetStorageConfig returns storage configuration
func (y *YAMLProvider) GetStorageConfig() (*StorageData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Storage, nil
}

// GetHTTPConfig returns the REST API server configuration
func (y *YAMLProvider) GetHTTPConfig() (*HTTPData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.HTTP, nil
}

// GetChartConfig returns the chart assembly defaults
func (y *YAMLProvider) GetChartConfig() (*ChartData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Chart, nil
}

// IsReadOnly returns true since YAML files are read-only through this interface
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}

// YAML-specific structs with proper YAML tags for parsing the original format
type StorageYAML struct {
	Postgres *PostgresYAML `yaml:"postgres,omitempty"`
}

type PostgresYAML struct {
	ConnectionString string `yaml:"connection-string"`
}

type HTTPYAML struct {
	Cert       string `yaml:"cert,omitempty"`
	Key        string `yaml:"key,omitempty"`
	Port       int    `yaml:"port,omitempty"`
	ListenAddr string `yaml:"listen-addr,omitempty"`
	EnableCORS bool   `yaml:"enable-cors,omitempty"`
}

type ChartYAML struct {
	PeakDeltaFraction float64      `yaml:"peak-delta-fraction,omitempty"`
	FavorableBand     float64      `yaml:"favorable-band,omitempty"`
	DateLocale        string       `yaml:"date-locale,omitempty"`
	Tooltip           *TooltipYAML `yaml:"tooltip,omitempty"`
}

type TooltipYAML struct {
	CharWidth  float64 `yaml:"char-width,omitempty"`
	LineHeight float64 `yaml:"line-height,omitempty"`
	PadY       float64 `yaml:"pad-y,omitempty"`
	MinWidth   float64 `yaml:"min-width,omitempty"`
	MaxWidth   float64 `yaml:"max-width,omitempty"`
	Gap        float64 `yaml:"gap,omitempty"`
}
