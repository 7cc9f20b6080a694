// Package format renders prices for display.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// German grouping matches the display convention: dot thousands separator,
// grouping from the first thousand.
var printer = message.NewPrinter(language.German)

// Integer rounds v half-to-even and renders it with dot-grouped thousands.
// Values that cannot be read as a number are returned unformatted.
func Integer(v any) string {
	f, ok := toFloat(v)
	if !ok {
		if v == nil {
			return "-"
		}
		return fmt.Sprint(v)
	}
	r := math.RoundToEven(f)
	if math.IsNaN(r) || r >= math.MaxInt64 || r < math.MinInt64 {
		return fmt.Sprint(v)
	}
	return printer.Sprintf("%d", int64(r))
}

// Ladder renders one "{prefix}{n} → value" line per level.
func Ladder(prefix string, levels []float64) string {
	lines := make([]string, len(levels))
	for i, lvl := range levels {
		lines[i] = fmt.Sprintf("%s%d → %s", prefix, i+1, Integer(lvl))
	}
	return strings.Join(lines, "\n")
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}
