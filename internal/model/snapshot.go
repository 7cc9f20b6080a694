package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Snapshot key conventions produced by the upstream indicator stage.
const (
	KeyMarketPrice = "Valor_mcdo"
	KeyAsset       = "Activo"
)

// Snapshot is the flat indicator mapping keyed "{Indicator}_{timeframe}".
// It is read-only for every consumer in this module.
type Snapshot map[string]any

// Key builds the flat key for an indicator on a timeframe.
func Key(indicator, tf string) string {
	return indicator + "_" + tf
}

// Value returns the raw value stored under key.
func (s Snapshot) Value(key string) (any, bool) {
	v, ok := s[key]
	return v, ok && v != nil
}

// Number returns a numeric value, parsing numeric strings. Missing or
// non-numeric values yield ok=false.
func (s Snapshot) Number(key string) (float64, bool) {
	v, ok := s.Value(key)
	if !ok {
		return 0, false
	}
	if f, ok := numeric(v); ok {
		return f, true
	}
	if str, isStr := v.(string); isStr {
		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err == nil {
			return f, true
		}
	}
	return 0, false
}

// NumberOrZero is Number with the zero default used for prices and ATR.
func (s Snapshot) NumberOrZero(key string) float64 {
	f, _ := s.Number(key)
	return f
}

// Level returns a strictly numeric value as a Level. Strings never qualify.
func (s Snapshot) Level(key string) Level {
	v, ok := s.Value(key)
	if !ok {
		return Level{}
	}
	f, ok := numeric(v)
	if !ok {
		return Level{}
	}
	return Some(f)
}

// String returns the value under key as text, or def when missing.
func (s Snapshot) String(key, def string) string {
	v, ok := s.Value(key)
	if !ok {
		return def
	}
	if str, isStr := v.(string); isStr {
		return str
	}
	return fmt.Sprint(v)
}

// Truthy reports whether the value under key is set in the loose sense used
// by the upstream stage: true, a non-zero number or a non-empty string.
func (s Snapshot) Truthy(key string) bool {
	v, ok := s.Value(key)
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	}
	if f, ok := numeric(v); ok {
		return f != 0
	}
	return true
}

// Price is the current market price, zero when missing.
func (s Snapshot) Price() float64 {
	return s.NumberOrZero(KeyMarketPrice)
}

// Asset is the instrument label, "-" when missing.
func (s Snapshot) Asset() string {
	return s.String(KeyAsset, "-")
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
