package levels

import (
	"github.com/Alias1177/positions/internal/model"
)

// ATRTargetMultiples are the ATR distances of TP1..TP3 from their reference.
var ATRTargetMultiples = [model.LadderSize]float64{1.30, 2.00, 2.80}

// TakeProfit derives the pivot, zone and ATR target sequences. The running
// reference starts at E1 and moves to each confirmed pivot, or to the ATR
// target when no pivot qualifies. The zone level is only offered at indices
// where it lies beyond the matching entry.
func (c *Calculator) TakeProfit(f model.FrameIndicators, entries model.EntryLadder) model.TakeProfitLadder {
	pivots, beyond := f.Support, below
	if f.Direction == model.Bullish {
		pivots, beyond = f.Resistance, above
	}
	sign := f.Direction.Sign()

	var zone model.Level
	if f.EnvelopingZone {
		zone = nonZero(f.Fib786)
	}

	var out model.TakeProfitLadder
	ref := entries.Levels[0]
	for i, p := range pivots {
		out.Pivot[i] = nonZero(when(p, beyond(ref)))
		out.Zone[i] = when(zone, beyond(entries.Levels[i]))
		out.ATR[i] = ref + sign*ATRTargetMultiples[i]*f.ATR
		ref = out.Pivot[i].Or(out.ATR[i])
	}
	return out
}
