package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/delorianv/volcano-eruptions/internal/eruption"
)

// Required CSV headers. Header cells are whitespace-trimmed before matching.
var requiredColumns = []string{
	"Volcano_Name",
	"Country",
	"Latitude",
	"Longitude",
	"Volcano_Type",
	"Last_Eruption",
}

var titleCaser = cases.Title(language.English)

// MissingColumnsError reports required headers absent from the source file.
type MissingColumnsError struct {
	Path    string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("dataset %s missing required columns: %s", e.Path, strings.Join(e.Columns, ", "))
}

// Load reads the volcano CSV at path and returns the annotated collection.
//
// A missing file or unreadable content is a load error; so are missing
// required columns. Callers report the error once and continue on an empty
// collection. Individual rows with unparseable coordinates or too few fields
// are skipped and counted, not fatal.
func Load(path string) (*Collection, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open dataset: %w", err)
	}
	defer file.Close()

	c, err := Read(file)
	if err != nil {
		if missing, ok := err.(*MissingColumnsError); ok {
			missing.Path = path
		}
		return nil, err
	}
	c.Source = path
	return c, nil
}

// Read parses a volcano CSV from r. See Load for error semantics.
func Read(r io.Reader) (*Collection, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, validate per row

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("dataset is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read dataset header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	c := &Collection{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read dataset row: %w", err)
		}

		rec, ok := parseRow(row, index)
		if !ok {
			c.Skipped++
			continue
		}
		c.Records = append(c.Records, rec)
	}

	return c, nil
}

func parseRow(row []string, index map[string]int) (Record, bool) {
	field := func(col string) (string, bool) {
		i := index[col]
		if i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	name, ok := field("Volcano_Name")
	if !ok || name == "" {
		return Record{}, false
	}

	latText, ok := field("Latitude")
	if !ok {
		return Record{}, false
	}
	lonText, ok := field("Longitude")
	if !ok {
		return Record{}, false
	}
	lat, err := strconv.ParseFloat(latText, 64)
	if err != nil {
		return Record{}, false
	}
	lon, err := strconv.ParseFloat(lonText, 64)
	if err != nil {
		return Record{}, false
	}

	country, _ := field("Country")
	// Clean up all-lowercase country names; leave mixed case (and acronyms
	// like "USA") alone.
	if country != "" && country == strings.ToLower(country) {
		country = titleCaser.String(country)
	}
	volcanoType, _ := field("Volcano_Type")
	lastEruption, _ := field("Last_Eruption")

	return Record{
		Name:         name,
		Country:      country,
		Latitude:     lat,
		Longitude:    lon,
		Type:         volcanoType,
		LastEruption: lastEruption,
		EruptionYear: eruption.AnnotateYear(lastEruption),
	}, true
}
