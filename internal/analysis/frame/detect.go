package frame

import (
	"sort"
	"strings"

	"github.com/Alias1177/positions/internal/model"
)

const validPrefix = "is_valid_"

// KeyDetector finds timeframes by their "is_valid_{tf}" keys. Known
// timeframes come first in Order; unknown ones follow alphabetically.
type KeyDetector struct {
	Order []string
}

func (d KeyDetector) Timeframes(s model.Snapshot) []string {
	found := make(map[string]bool)
	for k := range s {
		if tf, ok := strings.CutPrefix(k, validPrefix); ok && tf != "" {
			found[tf] = true
		}
	}

	out := make([]string, 0, len(found))
	for _, tf := range d.Order {
		if found[tf] {
			out = append(out, tf)
			delete(found, tf)
		}
	}

	rest := make([]string, 0, len(found))
	for tf := range found {
		rest = append(rest, tf)
	}
	sort.Strings(rest)
	return append(out, rest...)
}
