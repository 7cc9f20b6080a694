// Package levels derives entry, stop-loss and take-profit ladders for a
// timeframe from its indicator snapshot.
package levels

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/positions/internal/analysis/frame"
	"github.com/Alias1177/positions/internal/model"
)

// DefaultADXStructuralThreshold separates aggressive from tactical entries on
// structural frames.
const DefaultADXStructuralThreshold = 25.0

// Calculator builds the three ladders. It holds no per-frame state and is
// safe for concurrent use.
type Calculator struct {
	classifier   frame.Classifier
	adxThreshold float64
	logger       zerolog.Logger
}

// NewCalculator creates a Calculator using classifier for frame roles.
func NewCalculator(classifier frame.Classifier, adxThreshold float64) *Calculator {
	if classifier == nil {
		classifier = frame.SnapshotClassifier{}
	}
	return &Calculator{
		classifier:   classifier,
		adxThreshold: adxThreshold,
		logger:       log.With().Str("component", "levels").Logger(),
	}
}

// firstValid returns the first present candidate, or an absent Level.
func firstValid(candidates ...model.Level) model.Level {
	for _, c := range candidates {
		if c.Valid {
			return c
		}
	}
	return model.Level{}
}

// when keeps lvl only if it is present and passes the test.
func when(lvl model.Level, test func(float64) bool) model.Level {
	if lvl.Valid && test(lvl.Value) {
		return lvl
	}
	return model.Level{}
}

// nonZero drops zero targets, which the target fallback treats as missing.
func nonZero(lvl model.Level) model.Level {
	if lvl.Valid && lvl.Value == 0 {
		return model.Level{}
	}
	return lvl
}

func below(ref float64) func(float64) bool { return func(p float64) bool { return p < ref } }

func above(ref float64) func(float64) bool { return func(p float64) bool { return p > ref } }
