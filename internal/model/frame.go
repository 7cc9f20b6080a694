package model

import (
	"strconv"
	"strings"
)

// Direction is the trade bias of a timeframe.
type Direction string

const (
	Bullish Direction = "bullish"
	Bearish Direction = "bearish"
)

// ParseDirection maps an upstream trend label to a Direction. Any label
// containing "alcista" is bullish, everything else (including empty) bearish.
func ParseDirection(label string) Direction {
	if strings.Contains(strings.ToLower(label), "alcista") {
		return Bullish
	}
	return Bearish
}

// Sign is +1 for bullish and -1 for bearish.
func (d Direction) Sign() float64 {
	if d == Bullish {
		return 1
	}
	return -1
}

// FrameIndicators is the typed view of one timeframe's indicators, built once
// from the flat snapshot.
type FrameIndicators struct {
	Timeframe      string
	Price          float64
	ATR            float64
	ADX            float64
	FrameHigh      float64
	FrameLow       float64
	Support        [3]Level
	Resistance     [3]Level
	Fib786         Level
	EnvelopingZone bool
	TrendLabel     string
	Direction      Direction
	Valid          bool

	// HasATR is false when ATR was missing or unparsable and defaulted to 0.
	HasATR bool
	// HasPrice is false when the market price defaulted to 0.
	HasPrice bool
}

// Frame extracts the indicators for tf.
func (s Snapshot) Frame(tf string) FrameIndicators {
	atr, hasATR := s.Number(Key("ATR", tf))
	price, hasPrice := s.Number(KeyMarketPrice)
	label := s.String(Key("direccion", tf), "")

	f := FrameIndicators{
		Timeframe:      tf,
		Price:          price,
		ATR:            atr,
		ADX:            s.NumberOrZero(Key("ADX", tf)),
		FrameHigh:      s.NumberOrZero(Key("Marco_High", tf)),
		FrameLow:       s.NumberOrZero(Key("Marco_Low", tf)),
		Fib786:         s.Level(Key("Fib_78.6percent", tf)),
		EnvelopingZone: s.Truthy(Key("Fibo_zona_envolvente", tf)),
		TrendLabel:     label,
		Direction:      ParseDirection(label),
		Valid:          s.Truthy(Key("is_valid", tf)),
		HasATR:         hasATR,
		HasPrice:       hasPrice,
	}
	for i := 0; i < 3; i++ {
		n := strconv.Itoa(i + 1)
		f.Support[i] = s.Level(Key("Support_pivot_"+n, tf))
		f.Resistance[i] = s.Level(Key("Resistance_pivot_"+n, tf))
	}
	return f
}
