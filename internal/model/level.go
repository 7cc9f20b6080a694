package model

// Level is an optional price, in the spirit of sql.NullFloat64.
type Level struct {
	Value float64 `json:"value"`
	Valid bool    `json:"valid"`
}

// Some wraps a present price.
func Some(v float64) Level {
	return Level{Value: v, Valid: true}
}

// Or returns the price if present, otherwise fallback.
func (l Level) Or(fallback float64) float64 {
	if l.Valid {
		return l.Value
	}
	return fallback
}
