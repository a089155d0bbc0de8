package sales

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultDateFormat matches the report's MM-DD-YY date column.
const DefaultDateFormat = "01-02-06"

// Column headers the loader looks for. Matching is case-insensitive
// after trimming.
const (
	colDate     = "date"
	colCategory = "category"
	colState    = "ship-state"
	colCity     = "ship-city"
	colStatus   = "status"
	colAmount   = "amount"
	colOrderID  = "order id"
)

var titleCaser = cases.Title(language.English)

// LoadFile reads and cleans an order report CSV from disk.
func LoadFile(path, dateFormat string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sales: open report: %w", err)
	}
	defer f.Close()
	return LoadReader(f, dateFormat)
}

// LoadReader reads and cleans an order report CSV. Rows whose date or
// amount cannot be parsed are dropped; missing optional columns yield
// "Unknown" values so the dashboard still renders. City and state names
// are trimmed and title-cased so filter options collapse spelling
// variants; category, status, and order id are trimmed only.
func LoadReader(r io.Reader, dateFormat string) (*Dataset, error) {
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // report exports have ragged rows

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("sales: read header: %w", err)
	}

	idx := headerIndex(header)
	for _, required := range []string{colDate, colAmount} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("sales: report is missing required column %q", required)
		}
	}
	for _, optional := range []string{colCategory, colState, colCity, colStatus, colOrderID} {
		if _, ok := idx[optional]; !ok {
			slog.Warn("report column not found, substituting Unknown", "column", optional)
		}
	}

	ds := &Dataset{}
	dropped := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("sales: read row: %w", err)
		}

		date, err := parseDate(field(rec, idx, colDate), dateFormat)
		if err != nil {
			dropped++
			continue
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(field(rec, idx, colAmount)), 64)
		if err != nil {
			dropped++
			continue
		}

		ds.Orders = append(ds.Orders, Order{
			ID:       strings.TrimSpace(fieldOr(rec, idx, colOrderID, "Unknown")),
			Date:     date,
			Month:    date.Format("2006-01"),
			Category: strings.TrimSpace(fieldOr(rec, idx, colCategory, "Unknown")),
			State:    PlaceName(fieldOr(rec, idx, colState, "Unknown")),
			City:     PlaceName(fieldOr(rec, idx, colCity, "Unknown")),
			Status:   strings.TrimSpace(fieldOr(rec, idx, colStatus, "Unknown")),
			Amount:   amount,
		})
	}

	if dropped > 0 {
		slog.Debug("dropped unparseable report rows", "count", dropped)
	}

	ds.buildOptions()
	return ds, nil
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func field(rec []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func fieldOr(rec []string, idx map[string]int, name, fallback string) string {
	if _, ok := idx[name]; !ok {
		return fallback
	}
	v := strings.TrimSpace(field(rec, idx, name))
	if v == "" {
		return fallback
	}
	return v
}

func parseDate(raw, format string) (time.Time, error) {
	return time.Parse(format, strings.TrimSpace(raw))
}

// PlaceName normalizes a city or state name: trim and title-case, so
// "MUMBAI" and "mumbai " collapse to one filter option. Also used to
// match place names mentioned in data questions.
func PlaceName(raw string) string {
	return titleCaser.String(strings.ToLower(strings.TrimSpace(raw)))
}
