package levels

import (
	"github.com/Alias1177/positions/internal/model"
)

const defaultStopFactor = 0.25

var (
	structuralStopFactors = map[model.EntryStyle]float64{
		model.Aggressive: 0.20,
		model.Tactical:   0.15,
	}
	projectedStopFactors = map[model.EntryStyle]float64{
		model.Aggressive:   0.30,
		model.Tactical:     0.25,
		model.Conservative: 0.25,
	}
)

// StopFactor returns the ATR fraction used when no pivot qualifies as a stop.
func StopFactor(structural bool, style model.EntryStyle) float64 {
	factors := projectedStopFactors
	if structural {
		factors = structuralStopFactors
	}
	if f, ok := factors[style]; ok {
		return f
	}
	return defaultStopFactor
}

// StopLoss cascades SL1..SL3 from E1. Each stop is the next protective pivot
// beyond the previous reference, or the reference pushed one ATR offset
// further against the trade.
func (c *Calculator) StopLoss(s model.Snapshot, f model.FrameIndicators, entries model.EntryLadder) model.StopLossLadder {
	structural := c.classifier.IsStructural(s, f.Timeframe)
	offset := StopFactor(structural, entries.Style) * f.ATR

	pivots, beyond, sign := f.Resistance, above, 1.0
	if f.Direction == model.Bullish {
		pivots, beyond, sign = f.Support, below, -1.0
	}

	var out model.StopLossLadder
	ref := entries.Levels[0]
	for i, p := range pivots {
		pivot := when(p, beyond(ref))
		stop := firstValid(pivot, model.Some(ref+sign*offset))
		out.Levels[i] = stop.Value
		out.FromPivot[i] = pivot.Valid
		ref = stop.Value
	}
	return out
}
