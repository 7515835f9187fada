package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/delorianv/volcano-eruptions/internal/dataset"
)

// Volcano is a catalog row.
type Volcano struct {
	ID             int64
	Name           string
	NameNormalized string
	Country        string
	Latitude       float64
	Longitude      float64
	Type           string
	LastEruption   string
	EruptionYear   *int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Record converts a catalog row back to a dataset record.
func (v *Volcano) Record() dataset.Record {
	return dataset.Record{
		Name:         v.Name,
		Country:      v.Country,
		Latitude:     v.Latitude,
		Longitude:    v.Longitude,
		Type:         v.Type,
		LastEruption: v.LastEruption,
		EruptionYear: v.EruptionYear,
	}
}

var nameReplacer = strings.NewReplacer(
	" ", "", ".", "", "-", "", "_", "",
	"'", "", ":", "", "&", "", ",", "",
	"(", "", ")", "", "[", "", "]", "",
)

// NormalizeName converts a volcano name to a normalized form for matching:
// "Nevado del Ruiz" -> "nevadodelruiz".
func NormalizeName(name string) string {
	return nameReplacer.Replace(strings.ToLower(name))
}

// UpsertVolcano inserts or updates a volcano keyed on normalized name and
// country.
func (c *CatalogDB) UpsertVolcano(rec dataset.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.upsertLocked(rec)
}

func (c *CatalogDB) upsertLocked(rec dataset.Record) error {
	_, err := c.db.Exec(`
		INSERT INTO volcanoes (name, name_normalized, country, latitude, longitude,
		                       volcano_type, last_eruption, eruption_year, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name_normalized, country) DO UPDATE SET
			name = excluded.name,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			volcano_type = excluded.volcano_type,
			last_eruption = excluded.last_eruption,
			eruption_year = excluded.eruption_year,
			updated_at = CURRENT_TIMESTAMP`,
		rec.Name, NormalizeName(rec.Name), rec.Country, rec.Latitude, rec.Longitude,
		rec.Type, rec.LastEruption, rec.EruptionYear,
	)
	if err != nil {
		return fmt.Errorf("unable to upsert volcano %q: %w", rec.Name, err)
	}
	return nil
}

// ImportCollection upserts every record in a single transaction and returns
// the number imported.
func (c *CatalogDB) ImportCollection(col *dataset.Collection) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx, err := c.db.Begin()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO volcanoes (name, name_normalized, country, latitude, longitude,
		                       volcano_type, last_eruption, eruption_year, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name_normalized, country) DO UPDATE SET
			name = excluded.name,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			volcano_type = excluded.volcano_type,
			last_eruption = excluded.last_eruption,
			eruption_year = excluded.eruption_year,
			updated_at = CURRENT_TIMESTAMP`)
	if err != nil {
		tx.Rollback()
		return 0, err
	}
	defer stmt.Close()

	count := 0
	for _, rec := range col.Records {
		if _, err := stmt.Exec(
			rec.Name, NormalizeName(rec.Name), rec.Country, rec.Latitude, rec.Longitude,
			rec.Type, rec.LastEruption, rec.EruptionYear,
		); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("unable to import volcano %q: %w", rec.Name, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return count, nil
}

// GetVolcanoByName looks up a volcano by normalized name, optionally scoped
// to a country. Returns nil when not found.
func (c *CatalogDB) GetVolcanoByName(name, country string) (*Volcano, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	query := `SELECT id, name, name_normalized, country, latitude, longitude,
	                 volcano_type, last_eruption, eruption_year, created_at, updated_at
	          FROM volcanoes WHERE name_normalized = ?`
	args := []interface{}{NormalizeName(name)}
	if country != "" {
		query += " AND country = ?"
		args = append(args, country)
	}
	query += " LIMIT 1"

	var v Volcano
	err := c.db.QueryRow(query, args...).Scan(
		&v.ID, &v.Name, &v.NameNormalized, &v.Country, &v.Latitude, &v.Longitude,
		&v.Type, &v.LastEruption, &v.EruptionYear, &v.CreatedAt, &v.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ListVolcanoes returns all catalog rows ordered by name.
func (c *CatalogDB) ListVolcanoes() ([]*Volcano, error) {
	return c.listWhere("", nil)
}

// ListVolcanoesByRange returns rows whose eruption year falls in [start, end].
func (c *CatalogDB) ListVolcanoesByRange(start, end int) ([]*Volcano, error) {
	return c.listWhere("WHERE eruption_year IS NOT NULL AND eruption_year BETWEEN ? AND ?",
		[]interface{}{start, end})
}

func (c *CatalogDB) listWhere(where string, args []interface{}) ([]*Volcano, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	query := fmt.Sprintf(`SELECT id, name, name_normalized, country, latitude, longitude,
	                             volcano_type, last_eruption, eruption_year, created_at, updated_at
	                      FROM volcanoes %s ORDER BY name`, where)

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("unable to list volcanoes: %w", err)
	}
	defer rows.Close()

	var out []*Volcano
	for rows.Next() {
		var v Volcano
		if err := rows.Scan(
			&v.ID, &v.Name, &v.NameNormalized, &v.Country, &v.Latitude, &v.Longitude,
			&v.Type, &v.LastEruption, &v.EruptionYear, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("unable to scan volcano: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}

// Collection loads the whole catalog as a dataset collection.
func (c *CatalogDB) Collection() (*dataset.Collection, error) {
	volcanoes, err := c.ListVolcanoes()
	if err != nil {
		return nil, err
	}
	col := &dataset.Collection{Source: c.path}
	for _, v := range volcanoes {
		col.Records = append(col.Records, v.Record())
	}
	return col, nil
}
