package model

// SummaryRow is one fiscal year's totals from the summary workbook.
// Monetary fields are in rupees; ImpExpRatio is unitless.
type SummaryRow struct {
	FiscalYear   string  `json:"fiscalYear"`
	Imports      float64 `json:"imports"`
	Exports      float64 `json:"exports"`
	TradeDeficit float64 `json:"tradeDeficit"`
	TotalTrade   float64 `json:"totalTrade"`
	ImpExpRatio  float64 `json:"impExpRatio"`
}

// GrowthRow carries the year-over-year percentage changes matching a
// SummaryRow.
type GrowthRow struct {
	FiscalYear   string  `json:"fiscalYear"`
	Imports      float64 `json:"imports"`
	Exports      float64 `json:"exports"`
	TradeDeficit float64 `json:"tradeDeficit"`
	TotalTrade   float64 `json:"totalTrade"`
	ImpExpRatio  float64 `json:"impExpRatio"`
}

// KPICard is one headline card for the latest fiscal year. Value is
// pre-formatted; Delta carries the growth with a direction marker.
type KPICard struct {
	Label      string `json:"label"`
	Value      string `json:"value"`
	Delta      string `json:"delta"`
	DeltaColor string `json:"deltaColor"`
}
