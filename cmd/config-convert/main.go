package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/leafgauge/leafgauge/pkg/config"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE configs (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE storage_configs (
	id                         INTEGER PRIMARY KEY AUTOINCREMENT,
	config_id                  INTEGER NOT NULL REFERENCES configs(id),
	enabled                    INTEGER NOT NULL DEFAULT 1,
	postgres_connection_string TEXT
);

CREATE TABLE http_configs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	config_id   INTEGER NOT NULL REFERENCES configs(id),
	cert        TEXT,
	key         TEXT,
	port        INTEGER,
	listen_addr TEXT,
	enable_cors INTEGER
);

CREATE TABLE chart_configs (
	id                  INTEGER PRIMARY KEY AUTOINCREMENT,
	config_id           INTEGER NOT NULL REFERENCES configs(id),
	peak_delta_fraction REAL,
	favorable_band      REAL,
	date_locale         TEXT,
	tooltip_char_width  REAL,
	tooltip_line_height REAL,
	tooltip_pad_y       REAL,
	tooltip_min_width   REAL,
	tooltip_max_width   REAL,
	tooltip_gap         REAL
);
`

func main() {
	var (
		yamlFile   = flag.String("yaml", "", "Path to YAML configuration file (required)")
		sqliteFile = flag.String("sqlite", "", "Path to SQLite database file (required)")
		force      = flag.Bool("force", false, "Overwrite existing SQLite database")
		dryRun     = flag.Bool("dry-run", false, "Show what would be done without executing")
	)
	flag.Parse()

	if *yamlFile == "" || *sqliteFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -yaml <config.yaml> -sqlite <config.db>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	if _, err := os.Stat(*yamlFile); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: YAML file does not exist: %s\n", *yamlFile)
		os.Exit(1)
	}

	if _, err := os.Stat(*sqliteFile); err == nil {
		if !*force {
			fmt.Fprintf(os.Stderr, "Error: SQLite file already exists: %s\n", *sqliteFile)
			fmt.Fprintf(os.Stderr, "Use -force to overwrite or choose a different filename\n")
			os.Exit(1)
		}
		if !*dryRun {
			if err := os.Remove(*sqliteFile); err != nil {
				fmt.Fprintf(os.Stderr, "Error removing existing SQLite file: %v\n", err)
				os.Exit(1)
			}
		}
	}

	fmt.Printf("Converting YAML configuration to SQLite...\n")
	fmt.Printf("  Source: %s\n", *yamlFile)
	fmt.Printf("  Target: %s\n", *sqliteFile)

	fmt.Printf("Loading YAML configuration...\n")
	cfg, err := config.NewYAMLProvider(*yamlFile).LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading YAML configuration: %v\n", err)
		os.Exit(1)
	}

	printConfigSummary(cfg)

	if *dryRun {
		fmt.Println("DRY RUN complete - no database created")
		return
	}

	if err := writeSQLite(*sqliteFile, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing SQLite database: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Conversion complete: %s\n", *sqliteFile)
	fmt.Printf("Run leafgauge with: -config %s -config-backend sqlite\n", *sqliteFile)
}

func printConfigSummary(cfg *config.ConfigData) {
	if cfg.Storage.Postgres != nil {
		fmt.Println("  Storage: postgres configured")
	} else {
		fmt.Println("  Storage: none configured")
	}
	fmt.Printf("  HTTP: %s:%d\n", cfg.HTTP.ListenAddr, cfg.HTTP.Port)
	fmt.Printf("  Chart: delta fraction %.2f, band %.2f, locale %s\n",
		cfg.Chart.PeakDeltaFraction, cfg.Chart.FavorableBand, cfg.Chart.DateLocale)
}

func writeSQLite(path string, cfg *config.ConfigData) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	res, err := db.Exec(`INSERT INTO configs (name) VALUES ('default')`)
	if err != nil {
		return fmt.Errorf("inserting config row: %w", err)
	}
	configID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading config id: %w", err)
	}

	if cfg.Storage.Postgres != nil {
		_, err = db.Exec(`INSERT INTO storage_configs (config_id, enabled, postgres_connection_string) VALUES (?, 1, ?)`,
			configID, cfg.Storage.Postgres.ConnectionString)
		if err != nil {
			return fmt.Errorf("inserting storage config: %w", err)
		}
	}

	_, err = db.Exec(`INSERT INTO http_configs (config_id, cert, key, port, listen_addr, enable_cors) VALUES (?, ?, ?, ?, ?, ?)`,
		configID, cfg.HTTP.Cert, cfg.HTTP.Key, cfg.HTTP.Port, cfg.HTTP.ListenAddr, cfg.HTTP.EnableCORS)
	if err != nil {
		return fmt.Errorf("inserting http config: %w", err)
	}

	var tcw, tlh, tpy, tmin, tmax, tgap any
	if t := cfg.Chart.Tooltip; t != nil {
		tcw, tlh, tpy, tmin, tmax, tgap = t.CharWidth, t.LineHeight, t.PadY, t.MinWidth, t.MaxWidth, t.Gap
	}
	_, err = db.Exec(`INSERT INTO chart_configs (config_id, peak_delta_fraction, favorable_band, date_locale,
		tooltip_char_width, tooltip_line_height, tooltip_pad_y, tooltip_min_width, tooltip_max_width, tooltip_gap)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		configID, cfg.Chart.PeakDeltaFraction, cfg.Chart.FavorableBand, cfg.Chart.DateLocale,
		tcw, tlh, tpy, tmin, tmax, tgap)
	if err != nil {
		return fmt.Errorf("inserting chart config: %w", err)
	}

	return nil
}
