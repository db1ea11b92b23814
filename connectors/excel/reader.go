package excel

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadRows returns the cells of the first sheet of an .xlsx workbook, one
// slice per row, header first. Trailing empty cells are omitted by excelize
// so rows may be shorter than the header.
func ReadRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// ReadBytes is ReadRows over an in-memory workbook.
func ReadBytes(b []byte) ([][]string, error) {
	return ReadRows(bytes.NewReader(b))
}
