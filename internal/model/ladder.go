package model

// EntryStyle is the entry aggressiveness chosen once per timeframe.
type EntryStyle string

const (
	Aggressive   EntryStyle = "aggressive"
	Tactical     EntryStyle = "tactical"
	Conservative EntryStyle = "conservative"
)

// LadderSize is the number of levels in every ladder.
const LadderSize = 3

// EntryLadder holds E1..E3, monotonic in the trade direction.
type EntryLadder struct {
	Levels  [LadderSize]float64 `json:"levels"`
	Style   EntryStyle          `json:"style"`
	Offset  float64             `json:"offset"`
	Spacing float64             `json:"spacing"`
}

// StopLossLadder holds SL1..SL3. FromPivot marks levels taken from a pivot
// rather than the ATR offset.
type StopLossLadder struct {
	Levels    [LadderSize]float64 `json:"levels"`
	FromPivot [LadderSize]bool    `json:"from_pivot"`
}

// TakeProfitSource names one of the three target sources.
type TakeProfitSource string

const (
	SourcePivot TakeProfitSource = "pivot"
	SourceZone  TakeProfitSource = "zone"
	SourceATR   TakeProfitSource = "atr"
)

// TakeProfitLadder holds the three parallel target sequences. ATR targets
// are always present and back both other sources.
type TakeProfitLadder struct {
	Pivot [LadderSize]Level   `json:"pivot"`
	Zone  [LadderSize]Level   `json:"zone"`
	ATR   [LadderSize]float64 `json:"atr"`
}

// Effective returns the per-index targets for a source with the ATR fallback
// applied.
func (t TakeProfitLadder) Effective(src TakeProfitSource) [LadderSize]float64 {
	var out [LadderSize]float64
	for i := range out {
		switch src {
		case SourcePivot:
			out[i] = t.Pivot[i].Or(t.ATR[i])
		case SourceZone:
			out[i] = t.Zone[i].Or(t.ATR[i])
		default:
			out[i] = t.ATR[i]
		}
	}
	return out
}
