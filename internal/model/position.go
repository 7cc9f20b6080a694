package model

// PositionRow is one rendered row per valid timeframe.
type PositionRow struct {
	Asset        string `json:"activo"`
	Timeframe    string `json:"tf"`
	Direction    string `json:"direccion"`
	CurrentPrice string `json:"valor_actual"`
	FrameLow     string `json:"frame_low"`
	FrameHigh    string `json:"frame_high"`

	Entries  string `json:"entrada"`
	StopLoss string `json:"sl"`

	PivotTargets string `json:"tp_pivots"`
	PivotRR      string `json:"rbb_pivots"`
	PivotWinFail string `json:"af_pivots"`
	ZoneTargets  string `json:"tp_zona_tecnica"`
	ZoneRR       string `json:"rbb_zona"`
	ZoneWinFail  string `json:"af_zona"`
	ATRTargets   string `json:"tp_atr_factor"`
	ATRRR        string `json:"rbb_atr"`
	ATRWinFail   string `json:"af_atr"`
}

// PositionColumns are the display headers, in field order.
var PositionColumns = []string{
	"Activo", "TF", "Direccion", "Valor actual",
	"Frame low", "Frame high",
	"Entrada", "SL",
	"TP Pivots", "RBB Pivots", "% A/F Pivots",
	"TP zona Técnica", "RBB Zona", "% A/F Zona",
	"TP ATR factor", "RBB ATR", "% A/F ATR",
}

// Cells returns the row values aligned with PositionColumns.
func (r PositionRow) Cells() []string {
	return []string{
		r.Asset, r.Timeframe, r.Direction, r.CurrentPrice,
		r.FrameLow, r.FrameHigh,
		r.Entries, r.StopLoss,
		r.PivotTargets, r.PivotRR, r.PivotWinFail,
		r.ZoneTargets, r.ZoneRR, r.ZoneWinFail,
		r.ATRTargets, r.ATRRR, r.ATRWinFail,
	}
}
