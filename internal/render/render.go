// Package render prints position rows for the CLI.
package render

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/Alias1177/positions/internal/model"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Write renders rows to w in the given format.
func Write(w io.Writer, rows []model.PositionRow, format string) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, rows)
	case FormatTable, "":
		return writeTable(w, rows)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeJSON(w io.Writer, rows []model.PositionRow) error {
	if rows == nil {
		rows = []model.PositionRow{}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding rows: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// writeTable prints one block per row; multi-line cells are indented under
// their header.
func writeTable(w io.Writer, rows []model.PositionRow) error {
	var b strings.Builder
	b.WriteString("\n===== POSITIONS (Entries, SL, TP, RBB, % Win/Fail) =====\n")

	if len(rows) == 0 {
		b.WriteString("No valid timeframes\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	width := 0
	for _, col := range model.PositionColumns {
		width = max(width, len([]rune(col)))
	}

	for _, row := range rows {
		fmt.Fprintf(&b, "\n--- %s %s ---\n", row.Asset, row.Timeframe)
		for i, cell := range row.Cells() {
			lines := strings.Split(cell, "\n")
			fmt.Fprintf(&b, "%-*s : %s\n", width, model.PositionColumns[i], lines[0])
			for _, line := range lines[1:] {
				fmt.Fprintf(&b, "%-*s   %s\n", width, "", line)
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
