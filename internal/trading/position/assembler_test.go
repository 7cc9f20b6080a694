package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alias1177/positions/internal/analysis/frame"
	"github.com/Alias1177/positions/internal/model"
	"github.com/Alias1177/positions/internal/trading/levels"
)

func newAssembler() *Assembler {
	classifier := frame.Funcs{
		Projected: func(model.Snapshot, string) frame.ProjectedFrame {
			return frame.ProjectedFrame{ZoneType: "completa"}
		},
	}
	calc := levels.NewCalculator(classifier, levels.DefaultADXStructuralThreshold)
	return NewAssembler(calc, frame.KeyDetector{Order: []string{"H1", "H4", "D1"}})
}

func snapshot() model.Snapshot {
	return model.Snapshot{
		"Activo":        "BTCUSDT",
		"Valor_mcdo":    100.0,
		"ATR_H4":        10.0,
		"ADX_H4":        18.0,
		"Marco_High_H4": 120.0,
		"Marco_Low_H4":  80.0,
		"direccion_H4":  "Alcista",
		"is_valid_H4":   true,
		"ATR_D1":        40.0,
		"is_valid_D1":   false,
	}
}

func TestBuildATROnly(t *testing.T) {
	rows := newAssembler().Build(snapshot())
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "BTCUSDT", row.Asset)
	assert.Equal(t, "H4", row.Timeframe)
	assert.Equal(t, "Alcista", row.Direction)
	assert.Equal(t, "100", row.CurrentPrice)
	assert.Equal(t, "80", row.FrameLow)
	assert.Equal(t, "120", row.FrameHigh)

	assert.Equal(t, "E1 → 102\nE2 → 105\nE3 → 108", row.Entries)
	assert.Equal(t, "SL1 → 100\nSL2 → 96\nSL3 → 94", row.StopLoss)

	atrTargets := "TP1 → 116\nTP2 → 136\nTP3 → 164"
	assert.Equal(t, atrTargets, row.ATRTargets)
	assert.Equal(t, "1/4\n1/4\n1/4", row.ATRRR)
	assert.Equal(t, "81%/19%\n78%/22%\n80%/20%", row.ATRWinFail)

	// Without pivots or zone every source falls back to the ATR targets.
	assert.Equal(t, atrTargets, row.PivotTargets)
	assert.Equal(t, atrTargets, row.ZoneTargets)
	assert.Equal(t, row.ATRRR, row.PivotRR)
	assert.Equal(t, row.ATRWinFail, row.ZoneWinFail)
}

func TestBuildWithPivotAndZone(t *testing.T) {
	snap := snapshot()
	snap["Resistance_pivot_1_H4"] = 110.0
	snap["Fib_78.6percent_H4"] = 111.0
	snap["Fibo_zona_envolvente_H4"] = true

	rows := newAssembler().Build(snap)
	require.Len(t, rows, 1)
	row := rows[0]

	assert.Equal(t, "TP1 → 110\nTP2 → 130\nTP3 → 158", row.PivotTargets)
	assert.Equal(t, "1/2\n1/3\n1/4", row.PivotRR)
	assert.Equal(t, "TP1 → 116\nTP2 → 130\nTP3 → 158", row.ATRTargets)

	assert.Equal(t, "TP1 → 111\nTP2 → 111\nTP3 → 111", row.ZoneTargets)
	assert.Equal(t, "1/3\n1/1\n1/0", row.ZoneRR)
	assert.Equal(t, "74%/26%\n41%/59%\n20%/80%", row.ZoneWinFail)
}

func TestBuildDirectionMatchesLadder(t *testing.T) {
	snap := snapshot()
	snap["direccion_H4"] = "Bajista"
	snap["Trend_bias_Lateral_sin_sesgo_H4"] = 1.0

	rows := newAssembler().Build(snap)
	require.Len(t, rows, 1)

	assert.Equal(t, "Bajista", rows[0].Direction)
	assert.Equal(t, "E1 → 98\nE2 → 95\nE3 → 92", rows[0].Entries)
}

func TestBuildMissingDirection(t *testing.T) {
	snap := snapshot()
	delete(snap, "direccion_H4")

	rows := newAssembler().Build(snap)
	require.Len(t, rows, 1)
	assert.Equal(t, "-", rows[0].Direction)
}

func TestBuildKeepsDetectorOrder(t *testing.T) {
	snap := snapshot()
	snap["is_valid_D1"] = true
	snap["is_valid_H1"] = 1

	rows := newAssembler().Build(snap)
	require.Len(t, rows, 3)
	assert.Equal(t, "H1", rows[0].Timeframe)
	assert.Equal(t, "H4", rows[1].Timeframe)
	assert.Equal(t, "D1", rows[2].Timeframe)
	assert.Equal(t, "-", rows[0].FrameHigh)
}

func TestBuildNoValidTimeframes(t *testing.T) {
	snap := snapshot()
	snap["is_valid_H4"] = false

	rows := newAssembler().Build(snap)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	assert.Empty(t, newAssembler().Build(model.Snapshot{}))
}

func TestComputeLadderShapes(t *testing.T) {
	snap := snapshot()
	a := newAssembler()

	l := a.Compute(snap, snap.Frame("H4"))
	assert.Len(t, l.Entries.Levels, model.LadderSize)
	assert.Len(t, l.StopLoss.Levels, model.LadderSize)
	assert.Len(t, l.TakeProfit.Pivot, model.LadderSize)
	assert.Len(t, l.TakeProfit.Zone, model.LadderSize)
	assert.Len(t, l.TakeProfit.ATR, model.LadderSize)

	for i := 1; i < model.LadderSize; i++ {
		assert.InDelta(t, l.Entries.Spacing, l.Entries.Levels[i]-l.Entries.Levels[i-1], 1e-9)
	}
}
