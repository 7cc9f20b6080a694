// Package frame holds the upstream frame-classification contracts consumed by
// the level calculators, with snapshot-backed defaults.
package frame

import (
	"github.com/Alias1177/positions/internal/model"
)

// ProjectedFrame is the classification of a non-structural timeframe.
type ProjectedFrame struct {
	ZoneType string `json:"tipo_zona"`
}

// Classifier decides the structural role of a timeframe.
type Classifier interface {
	IsStructural(s model.Snapshot, tf string) bool
	ClassifyProjected(s model.Snapshot, tf string) ProjectedFrame
}

// TimeframeDetector enumerates the timeframes present in a snapshot, in the
// order rows must be emitted.
type TimeframeDetector interface {
	Timeframes(s model.Snapshot) []string
}

// Funcs adapts plain functions to Classifier. Nil fields classify every
// frame as projected with an empty zone type.
type Funcs struct {
	Structural func(s model.Snapshot, tf string) bool
	Projected  func(s model.Snapshot, tf string) ProjectedFrame
}

func (f Funcs) IsStructural(s model.Snapshot, tf string) bool {
	if f.Structural == nil {
		return false
	}
	return f.Structural(s, tf)
}

func (f Funcs) ClassifyProjected(s model.Snapshot, tf string) ProjectedFrame {
	if f.Projected == nil {
		return ProjectedFrame{}
	}
	return f.Projected(s, tf)
}

// SnapshotClassifier reads classifications the upstream stage stored in the
// snapshot: "Frame_estructural_{tf}" (truthy) and "Tipo_zona_{tf}" (text).
type SnapshotClassifier struct{}

func (SnapshotClassifier) IsStructural(s model.Snapshot, tf string) bool {
	return s.Truthy(model.Key("Frame_estructural", tf))
}

func (SnapshotClassifier) ClassifyProjected(s model.Snapshot, tf string) ProjectedFrame {
	return ProjectedFrame{ZoneType: s.String(model.Key("Tipo_zona", tf), "")}
}
