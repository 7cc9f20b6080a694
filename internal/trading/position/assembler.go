// Package position turns an indicator snapshot into one position row per
// valid timeframe.
package position

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/positions/internal/analysis/frame"
	"github.com/Alias1177/positions/internal/format"
	"github.com/Alias1177/positions/internal/model"
	"github.com/Alias1177/positions/internal/trading/levels"
	"github.com/Alias1177/positions/internal/trading/risk"
)

// Ladders are the numeric results for one timeframe.
type Ladders struct {
	Frame      model.FrameIndicators
	Entries    model.EntryLadder
	StopLoss   model.StopLossLadder
	TakeProfit model.TakeProfitLadder
}

// Assembler orchestrates the level calculators per timeframe.
type Assembler struct {
	calc     *levels.Calculator
	detector frame.TimeframeDetector
	logger   zerolog.Logger
}

// NewAssembler creates an Assembler.
func NewAssembler(calc *levels.Calculator, detector frame.TimeframeDetector) *Assembler {
	return &Assembler{
		calc:     calc,
		detector: detector,
		logger:   log.With().Str("component", "position_assembler").Logger(),
	}
}

// Build returns one row per valid timeframe, in detector order. Invalid
// timeframes contribute nothing; an empty result is not an error.
func (a *Assembler) Build(s model.Snapshot) []model.PositionRow {
	timeframes := a.detector.Timeframes(s)
	rows := make([]model.PositionRow, 0, len(timeframes))

	for _, tf := range timeframes {
		f := s.Frame(tf)
		if !f.Valid {
			a.logger.Debug().Str("tf", tf).Msg("Skipping invalid timeframe")
			continue
		}
		rows = append(rows, a.Row(s, a.Compute(s, f)))
	}

	a.logger.Info().
		Str("asset", s.Asset()).
		Int("timeframes", len(timeframes)).
		Int("rows", len(rows)).
		Msg("Position rows assembled")
	return rows
}

// Compute runs the entry, stop-loss and take-profit stages for one frame.
func (a *Assembler) Compute(s model.Snapshot, f model.FrameIndicators) Ladders {
	if !f.HasPrice {
		a.logger.Warn().Str("tf", f.Timeframe).Msg("Market price missing, using 0")
	}
	if !f.HasATR {
		a.logger.Warn().Str("tf", f.Timeframe).Msg("ATR missing, using 0")
	}

	entries := a.calc.Entries(s, f)
	return Ladders{
		Frame:      f,
		Entries:    entries,
		StopLoss:   a.calc.StopLoss(s, f, entries),
		TakeProfit: a.calc.TakeProfit(f, entries),
	}
}

// Row formats computed ladders and their risk metrics for display.
func (a *Assembler) Row(s model.Snapshot, l Ladders) model.PositionRow {
	tf := l.Frame.Timeframe
	entries := l.Entries.Levels[:]
	stops := l.StopLoss.Levels[:]

	pivot := l.TakeProfit.Effective(model.SourcePivot)
	zone := l.TakeProfit.Effective(model.SourceZone)
	atr := l.TakeProfit.Effective(model.SourceATR)

	rr := func(targets [model.LadderSize]float64) string {
		return strings.Join(risk.CalculateRiskReward(entries, stops, present(targets)), "\n")
	}
	wf := func(targets [model.LadderSize]float64) string {
		return strings.Join(risk.CalculateWinFail(entries, stops, present(targets)), "\n")
	}

	return model.PositionRow{
		Asset:        s.Asset(),
		Timeframe:    tf,
		Direction:    s.String(model.Key("direccion", tf), "-"),
		CurrentPrice: format.Integer(rawOrNil(s, model.KeyMarketPrice)),
		FrameLow:     format.Integer(rawOrNil(s, model.Key("Marco_Low", tf))),
		FrameHigh:    format.Integer(rawOrNil(s, model.Key("Marco_High", tf))),

		Entries:  format.Ladder("E", entries),
		StopLoss: format.Ladder("SL", stops),

		PivotTargets: format.Ladder("TP", pivot[:]),
		PivotRR:      rr(pivot),
		PivotWinFail: wf(pivot),
		ZoneTargets:  format.Ladder("TP", zone[:]),
		ZoneRR:       rr(zone),
		ZoneWinFail:  wf(zone),
		ATRTargets:   format.Ladder("TP", atr[:]),
		ATRRR:        rr(atr),
		ATRWinFail:   wf(atr),
	}
}

func present(values [model.LadderSize]float64) []model.Level {
	out := make([]model.Level, len(values))
	for i, v := range values {
		out[i] = model.Some(v)
	}
	return out
}

func rawOrNil(s model.Snapshot, key string) any {
	v, _ := s.Value(key)
	return v
}
