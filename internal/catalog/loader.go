package catalog

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// LoadCatalog reads the product list at path. JSON files may hold either
// {"data": [...]} or a bare array; CSV files need a header row.
func LoadCatalog(path string) ([]Product, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		ps, err := decodeJSON(fp)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		return ps, nil
	case ".csv":
		ps, err := decodeCSV(fp)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		return ps, nil
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

func decodeJSON(r io.Reader) ([]Product, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var ps []Product
		if err := json.Unmarshal(raw, &ps); err != nil {
			return nil, err
		}
		return ps, nil
	}
	var doc struct {
		Data *[]Product `json:"data"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc.Data == nil {
		return nil, errors.New(`missing "data" array`)
	}
	return *doc.Data, nil
}

func decodeCSV(r io.Reader) ([]Product, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, errors.New("csv has no header")
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.TrimSpace(h)] = i
	}
	if _, ok := cols["name"]; !ok {
		return nil, errors.New(`csv header lacks "name"`)
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Product{}
	for _, row := range rows[1:] {
		out = append(out, Product{
			ID:       ID(get(row, "id")),
			Name:     get(row, "name"),
			Color:    get(row, "color"),
			Size:     get(row, "size"),
			ImageURL: get(row, "imageUrl"),
		})
	}
	return out, nil
}
