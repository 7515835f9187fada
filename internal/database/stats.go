package database

import "database/sql"

// CatalogStats summarizes the catalog contents.
type CatalogStats struct {
	TotalVolcanoes int
	Countries      int
	Dated          int
	Undated        int
	EarliestYear   *int
	LatestYear     *int
}

// Stats computes summary statistics for the catalog.
func (c *CatalogDB) Stats() (*CatalogStats, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := &CatalogStats{}

	err := c.db.QueryRow(`
		SELECT COUNT(*),
		       COUNT(DISTINCT country),
		       COUNT(eruption_year)
		FROM volcanoes`).Scan(&stats.TotalVolcanoes, &stats.Countries, &stats.Dated)
	if err != nil {
		return nil, err
	}
	stats.Undated = stats.TotalVolcanoes - stats.Dated

	var earliest, latest sql.NullInt64
	err = c.db.QueryRow(`SELECT MIN(eruption_year), MAX(eruption_year) FROM volcanoes`).
		Scan(&earliest, &latest)
	if err != nil {
		return nil, err
	}
	if earliest.Valid {
		y := int(earliest.Int64)
		stats.EarliestYear = &y
	}
	if latest.Valid {
		y := int(latest.Int64)
		stats.LatestYear = &y
	}

	return stats, nil
}

// Clear removes every volcano from the catalog.
func (c *CatalogDB) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.db.Exec(`DELETE FROM volcanoes`)
	return err
}
