package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// expected CSV column order.
var csvHeader = []string{"id", "name", "ra", "dec", "mag", "bv", "constellation", "distance", "spectral"}

// ErrEmptyCatalog is returned when no row survives parsing and the
// magnitude cutoff.
var ErrEmptyCatalog = errors.New("catalog: no usable rows")

// LoadResult reports what the loader did with the input.
type LoadResult struct {
	Catalog Catalog
	Skipped int // malformed rows dropped
	Culled  int // valid rows over the magnitude limit
}

// Load parses a star catalog from CSV. Rows with non-numeric RA, Dec, or
// magnitude are skipped rather than failing the whole file; the magnitude
// cutoff is applied here so downstream code only ever filters by horizon.
func Load(r io.Reader, magLimit float64) (LoadResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return LoadResult{}, fmt.Errorf("read CSV header: %w", err)
	}
	if len(header) != len(csvHeader) {
		return LoadResult{}, fmt.Errorf("invalid CSV header: expected %v, got %v", csvHeader, header)
	}
	for i, h := range header {
		if strings.TrimSpace(strings.ToLower(h)) != csvHeader[i] {
			return LoadResult{}, fmt.Errorf("invalid CSV header: column %d should be %q, got %q", i, csvHeader[i], h)
		}
	}

	var res LoadResult
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Structurally broken row (wrong field count, bad quoting):
			// skip it like a malformed one.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				res.Skipped++
				continue
			}
			return LoadResult{}, fmt.Errorf("read CSV record: %w", err)
		}

		star, ok := parseRow(record)
		if !ok {
			res.Skipped++
			continue
		}
		if star.Mag > magLimit {
			res.Culled++
			continue
		}
		res.Catalog.Stars = append(res.Catalog.Stars, star)
	}

	if res.Catalog.Len() == 0 {
		return res, ErrEmptyCatalog
	}
	return res, nil
}

// LoadFile opens and parses a catalog file.
func LoadFile(path string, magLimit float64) (LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Load(f, magLimit)
}

func parseRow(record []string) (Star, bool) {
	if len(record) != len(csvHeader) {
		return Star{}, false
	}

	id, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return Star{}, false
	}
	ra, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil || ra < 0 || ra >= 24 {
		return Star{}, false
	}
	dec, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
	if err != nil || dec < -90 || dec > 90 {
		return Star{}, false
	}
	mag, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
	if err != nil {
		return Star{}, false
	}

	// Color index defaults to solar-ish white when absent.
	bv := 0.65
	if s := strings.TrimSpace(record[5]); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			bv = v
		}
	}

	var dist float64
	if s := strings.TrimSpace(record[7]); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			dist = v
		}
	}

	return Star{
		ID:            id,
		Name:          strings.TrimSpace(record[1]),
		RAHours:       ra,
		DecDeg:        dec,
		Mag:           mag,
		ColorIndex:    bv,
		Constellation: strings.TrimSpace(record[6]),
		DistanceLY:    dist,
		SpectralType:  strings.TrimSpace(record[8]),
	}, true
}
