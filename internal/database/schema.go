package database

import "database/sql"

type migration struct {
	version int
	up      []string
}

var migrations = []migration{
	{
		version: 1,
		up: []string{
			`CREATE TABLE schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,

			`CREATE TABLE volcanoes (
				id INTEGER PRIMARY KEY AUTOINCREMENT,

				-- Identification
				name TEXT NOT NULL,
				name_normalized TEXT NOT NULL,
				country TEXT NOT NULL,

				-- Location
				latitude REAL NOT NULL,
				longitude REAL NOT NULL,

				-- Classification
				volcano_type TEXT NOT NULL DEFAULT '',

				-- Eruption data: raw source text plus the year extracted at
				-- import time (NULL when nothing matched)
				last_eruption TEXT NOT NULL DEFAULT '',
				eruption_year INTEGER,

				-- Timestamps
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,

				UNIQUE(name_normalized, country)
			)`,

			`CREATE INDEX idx_volcanoes_normalized ON volcanoes(name_normalized)`,
			`CREATE INDEX idx_volcanoes_year ON volcanoes(eruption_year)`,
			`CREATE INDEX idx_volcanoes_country ON volcanoes(country)`,

			`INSERT INTO schema_version (version) VALUES (1)`,
		},
	},
}

// applyMigrations applies any pending schema migrations, each inside its own
// transaction. A migration's final statement records its own version.
func applyMigrations(db *sql.DB) error {
	var currentVersion int
	err := db.QueryRow("SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&currentVersion)
	if err != nil {
		// schema_version doesn't exist yet - fresh database
		currentVersion = 0
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		for _, stmt := range m.up {
			if _, err := tx.Exec(stmt); err != nil {
				tx.Rollback()
				return err
			}
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}

	return nil
}
