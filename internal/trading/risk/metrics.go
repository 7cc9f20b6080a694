package risk

import (
	"fmt"
	"math"

	"github.com/Alias1177/positions/internal/model"
)

// InfiniteRatio is reported when entry and stop coincide.
const InfiniteRatio = "1/∞"

const distanceEpsilon = 1e-6

// Trade is one entry/stop/target triple. A missing target is replaced by the
// stop reflected beyond itself, a 1:1 fallback.
type Trade struct {
	Entry  float64
	Stop   float64
	Target model.Level
}

// ResolvedTarget returns the target price with the reflection fallback applied.
func (t Trade) ResolvedTarget() float64 {
	return t.Target.Or(t.Stop + (t.Stop - t.Entry))
}

// Risk is the entry-to-stop distance.
func (t Trade) Risk() float64 {
	return math.Abs(t.Entry - t.Stop)
}

// Reward is the entry-to-target distance.
func (t Trade) Reward() float64 {
	return math.Abs(t.ResolvedTarget() - t.Entry)
}

// RiskReward renders the ratio as "1/N", N being reward over risk rounded
// half-to-even.
func (t Trade) RiskReward() string {
	risk := t.Risk()
	if risk == 0 {
		return InfiniteRatio
	}
	return fmt.Sprintf("1/%d", int64(math.RoundToEven(t.Reward()/risk)))
}

// WinFail splits 100% by relative distance to target and stop. The two
// percentages describe geometry, not probability.
func (t Trade) WinFail() (win, fail int) {
	stopDist, targetDist := t.Risk(), t.Reward()
	total := stopDist + targetDist
	if total <= 0 {
		total = distanceEpsilon
	}
	win = int(math.RoundToEven(targetDist / total * 100))
	fail = int(math.RoundToEven(stopDist / total * 100))
	return win, fail
}

// Trades zips the three ladders, truncating to the shortest.
func Trades(entries, stops []float64, targets []model.Level) []Trade {
	n := min(len(entries), len(stops), len(targets))
	out := make([]Trade, n)
	for i := range out {
		out[i] = Trade{Entry: entries[i], Stop: stops[i], Target: targets[i]}
	}
	return out
}

// CalculateRiskReward returns one ratio string per matched triple.
func CalculateRiskReward(entries, stops []float64, targets []model.Level) []string {
	trades := Trades(entries, stops, targets)
	out := make([]string, len(trades))
	for i, t := range trades {
		out[i] = t.RiskReward()
	}
	return out
}

// CalculateWinFail returns one "{win}%/{fail}%" string per matched triple.
func CalculateWinFail(entries, stops []float64, targets []model.Level) []string {
	trades := Trades(entries, stops, targets)
	out := make([]string, len(trades))
	for i, t := range trades {
		win, fail := t.WinFail()
		out[i] = fmt.Sprintf("%d%%/%d%%", win, fail)
	}
	return out
}
