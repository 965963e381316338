package rendering

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

// Money formats an amount with two decimals
func Money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// OptionalMoney formats an optional amount, rendering missing values as an empty cell
func OptionalMoney(v *float64) string {
	if v == nil {
		return ""
	}
	return Money(*v)
}

// OptionalNumber formats an optional count without trailing zeros
func OptionalNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return decimal.NewFromFloat(*v).String()
}

// writeCSV writes a header and rows to dir/name and returns the file path
func writeCSV(dir, name string, header []string, rows [][]string) (string, error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", &RenderError{Message: fmt.Sprintf("failed to create %s", path), Cause: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return "", &RenderError{Message: fmt.Sprintf("failed to write %s", path), Cause: err}
	}
	if err := w.WriteAll(rows); err != nil {
		return "", &RenderError{Message: fmt.Sprintf("failed to write %s", path), Cause: err}
	}
	return path, nil
}

// marshalJSON indents like json.MarshalIndent but leaves &, < and > unescaped
func marshalJSON(v any, prefix string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// writeFile writes data to dir/name and returns the file path
func writeFile(dir, name string, data []byte) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", &RenderError{Message: fmt.Sprintf("failed to write %s", path), Cause: err}
	}
	return path, nil
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &RenderError{Message: fmt.Sprintf("failed to create output directory %s", dir), Cause: err}
	}
	return nil
}
