package loader

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/Henok-et/navigation-algorithm-for-a-city/core"
	"github.com/Henok-et/navigation-algorithm-for-a-city/heuristic"
)

// ErrMalformedInput wraps every decoding or validation failure of this package.
var ErrMalformedInput = errors.New("loader: malformed input")

// cityColumns is the number of leading columns read from a city row:
// label, x, y. Further columns are ignored.
const cityColumns = 3

// CityRecord is one row of the city file.
type CityRecord struct {
	Label string  `csv:"city"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
}

// ReadCityRecords decodes the city CSV. The header row is skipped after its
// width is checked; data rows are decoded positionally from their first
// three columns, and any further columns are ignored.
//
// Errors:
//   - ErrMalformedInput: missing header, fewer than three columns,
//     unparsable number, ragged rows or an empty label.
func ReadCityRecords(r io.Reader) ([]CityRecord, error) {
	reader := gocsv.DefaultCSVReader(r)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: city file has no header row", ErrMalformedInput)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if len(header) < cityColumns {
		return nil, fmt.Errorf("%w: city header has %d columns, want at least %d", ErrMalformedInput, len(header), cityColumns)
	}

	records := make([]CityRecord, 0)
	if err = gocsv.UnmarshalCSVWithoutHeaders(leadingColumns{r: reader, n: cityColumns}, &records); err != nil {
		// A header-only file is an empty city list, not a malformed one.
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []CityRecord{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	var i int
	for i = range records {
		records[i].Label = strings.TrimSpace(records[i].Label)
		if records[i].Label == "" {
			// +2: one for the header, one for 1-based numbering.
			return nil, fmt.Errorf("%w: empty city label on line %d", ErrMalformedInput, i+2)
		}
	}

	return records, nil
}

// LoadCities creates one node per city row in g and returns the labels in
// file order. Repeated labels are tolerated (CreateNode is idempotent).
func LoadCities(g *core.Graph, r io.Reader) ([]string, error) {
	records, err := ReadCityRecords(r)
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(records))
	var rec CityRecord
	for _, rec = range records {
		if err = g.CreateNode(rec.Label); err != nil {
			return nil, err
		}
		labels = append(labels, rec.Label)
	}

	return labels, nil
}

// LoadCoordinates reads the city CSV into a heuristic.Table.
// A repeated label keeps its last coordinates.
func LoadCoordinates(r io.Reader) (heuristic.Table, error) {
	records, err := ReadCityRecords(r)
	if err != nil {
		return nil, err
	}

	return Table(records), nil
}

// Table converts decoded records into a heuristic.Table.
func Table(records []CityRecord) heuristic.Table {
	t := make(heuristic.Table, len(records))
	for _, rec := range records {
		t[rec.Label] = r2.Vec{X: rec.X, Y: rec.Y}
	}
	return t
}

// leadingColumns truncates every row read from r to its first n fields.
type leadingColumns struct {
	r gocsv.CSVReader
	n int
}

func (c leadingColumns) Read() ([]string, error) {
	row, err := c.r.Read()
	if err != nil {
		return nil, err
	}
	if len(row) > c.n {
		row = row[:c.n]
	}

	return row, nil
}

func (c leadingColumns) ReadAll() ([][]string, error) {
	var rows [][]string
	for {
		row, err := c.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}
