package levels

import (
	"strings"

	"github.com/Alias1177/positions/internal/model"
)

const (
	rangeEpsilon = 1e-6
	// ratioTolerance absorbs the skew rangeEpsilon adds to the volatility
	// ratio, so a ratio of exactly 0.25 still selects the 0.25 band.
	ratioTolerance = 1e-6
)

// Spacing returns the gap between consecutive entries, scaled by how much of
// the frame range a single ATR covers.
func Spacing(atr, high, low float64) float64 {
	ratio := atr / (high - low + rangeEpsilon)
	switch {
	case ratio >= 0.40-ratioTolerance:
		return 0.30 * atr
	case ratio >= 0.25-ratioTolerance:
		return 0.25 * atr
	default:
		return 0.15 * atr
	}
}

// EntryOffset picks the distance of E1 from price as a fraction of ATR and
// the entry style it implies.
func EntryOffset(structural bool, adx, adxThreshold float64, zoneType string) (float64, model.EntryStyle) {
	if structural {
		if adx >= adxThreshold {
			return 0.20, model.Aggressive
		}
		return 0.15, model.Tactical
	}

	zone := strings.ToLower(zoneType)
	switch {
	case strings.Contains(zone, "envolvente"):
		return 0.20, model.Tactical
	case strings.Contains(zone, "completa"), strings.Contains(zone, "anticipada"):
		return 0.25, model.Aggressive
	default:
		return 0.30, model.Conservative
	}
}

// Entries builds E1..E3 stepping away from price in the trade direction.
func (c *Calculator) Entries(s model.Snapshot, f model.FrameIndicators) model.EntryLadder {
	structural := c.classifier.IsStructural(s, f.Timeframe)

	var zoneType string
	if !structural {
		zoneType = c.classifier.ClassifyProjected(s, f.Timeframe).ZoneType
	}
	fraction, style := EntryOffset(structural, f.ADX, c.adxThreshold, zoneType)

	sign := f.Direction.Sign()
	offset := fraction * f.ATR
	spacing := Spacing(f.ATR, f.FrameHigh, f.FrameLow)

	e1 := f.Price + sign*offset
	e2 := e1 + sign*spacing
	e3 := e2 + sign*spacing

	c.logger.Debug().
		Str("tf", f.Timeframe).
		Bool("structural", structural).
		Str("zone_type", zoneType).
		Str("style", string(style)).
		Float64("offset", offset).
		Float64("spacing", spacing).
		Msg("Entry ladder built")

	return model.EntryLadder{
		Levels:  [model.LadderSize]float64{e1, e2, e3},
		Style:   style,
		Offset:  offset,
		Spacing: spacing,
	}
}
