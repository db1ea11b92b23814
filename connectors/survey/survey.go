package survey

import (
	"ai-roi/connectors/csv"
	"ai-roi/connectors/excel"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Decode turns an uploaded or downloaded export into a row matrix, picking
// the format from the file name: .xlsx is read as a workbook, anything else
// as delimited text.
func Decode(name string, data []byte) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		rows, err := excel.ReadBytes(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return rows, nil
	default:
		return csv.Parse(string(data)), nil
	}
}

// ReadFile loads and decodes a survey export from disk. Read failures are
// returned as-is (wrapped) so callers can tell them apart from bad content.
func ReadFile(path string) ([][]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read survey %s: %w", path, err)
	}
	return Decode(path, b)
}
