package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteProvider implements ConfigProvider for SQLite database configuration
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// LoadConfig loads the complete configuration from SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	config := &ConfigData{}

	storage, err := s.GetStorageConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}
	config.Storage = *storage

	httpConfig, err := s.GetHTTPConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load http config: %w", err)
	}
	config.HTTP = *httpConfig

	chart, err := s.GetChartConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load chart config: %w", err)
	}
	config.Chart = *chart

	config.ApplyDefaults()

	return config, nil
}

// GetStorageConfig returns storage configuration from the database
func (s *SQLiteProvider) GetStorageConfig() (*StorageData, error) {
	query := `
		SELECT postgres_connection_string
		FROM storage_configs
		WHERE config_id = (SELECT id FROM configs WHERE name = 'default') AND enabled = 1
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query storage configs: %w", err)
	}
	defer rows.Close()

	storage := &StorageData{}

	for rows.Next() {
		var connectionString sql.NullString

		if err := rows.Scan(&connectionString); err != nil {
			return nil, fmt.Errorf("failed to scan storage config row: %w", err)
		}

		if connectionString.Valid && connectionString.String != "" {
			storage.Postgres = &PostgresData{
				ConnectionString: connectionString.String,
			}
		}
	}

	return storage, rows.Err()
}

// GetHTTPConfig returns the REST API server configuration from the database
func (s *SQLiteProvider) GetHTTPConfig() (*HTTPData, error) {
	query := `
		SELECT cert, key, port, listen_addr, enable_cors
		FROM http_configs
		WHERE config_id = (SELECT id FROM configs WHERE name = 'default')
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query http configs: %w", err)
	}
	defer rows.Close()

	httpConfig := &HTTPData{}

	for rows.Next() {
		var cert, key, listenAddr sql.NullString
		var port sql.NullInt64
		var enableCORS sql.NullBool

		if err := rows.Scan(&cert, &key, &port, &listenAddr, &enableCORS); err != nil {
			return nil, fmt.Errorf("failed to scan http config row: %w", err)
		}

		if cert.Valid {
			httpConfig.Cert = cert.String
		}
		if key.Valid {
			httpConfig.Key = key.String
		}
		if port.Valid {
			httpConfig.Port = int(port.Int64)
		}
		if listenAddr.Valid {
			httpConfig.ListenAddr = listenAddr.String
		}
		if enableCORS.Valid {
			httpConfig.EnableCORS = enableCORS.Bool
		}
	}

	return httpConfig, rows.Err()
}

// GetChartConfig returns the chart assembly defaults from the database
func (s *SQLiteProvider) GetChartConfig() (*ChartData, error) {
	query := `
		SELECT peak_delta_fraction, favorable_band, date_locale,
		       tooltip_char_width, tooltip_line_height, tooltip_pad_y,
		       tooltip_min_width, tooltip_max_width, tooltip_gap
		FROM chart_configs
		WHERE config_id = (SELECT id FROM configs WHERE name = 'default')
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query chart configs: %w", err)
	}
	defer rows.Close()

	chart := &ChartData{}

	for rows.Next() {
		var deltaFraction, favorableBand sql.NullFloat64
		var dateLocale sql.NullString
		var charWidth, lineHeight, padY, minWidth, maxWidth, gap sql.NullFloat64

		err := rows.Scan(
			&deltaFraction, &favorableBand, &dateLocale,
			&charWidth, &lineHeight, &padY, &minWidth, &maxWidth, &gap,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chart config row: %w", err)
		}

		if deltaFraction.Valid {
			chart.PeakDeltaFraction = deltaFraction.Float64
		}
		if favorableBand.Valid {
			chart.FavorableBand = favorableBand.Float64
		}
		if dateLocale.Valid {
			chart.DateLocale = dateLocale.String
		}

		// Tooltip overrides are all-or-nothing per row
		if charWidth.Valid && lineHeight.Valid && padY.Valid &&
			minWidth.Valid && maxWidth.Valid && gap.Valid {
			chart.Tooltip = &TooltipData{
				CharWidth:  charWidth.Float64,
				LineHeight: lineHeight.Float64,
				PadY:       padY.Float64,
				MinWidth:   minWidth.Float64,
				MaxWidth:   maxWidth.Float64,
				Gap:        gap.Float64,
			}
		}
	}

	return chart, rows.Err()
}

// IsReadOnly returns false since SQLite configurations can be modified
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	return s.db.Close()
}
