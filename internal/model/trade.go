package model

// View identifies which wide-table dataset a record belongs to.
type View string

const (
	ViewCountry View = "country"
	ViewProduct View = "product"
	ViewOffice  View = "office"
)

// ValidView reports whether s names one of the wide-table views.
func ValidView(s string) bool {
	switch View(s) {
	case ViewCountry, ViewProduct, ViewOffice:
		return true
	}
	return false
}

// RawEntry is an unenriched (name, imports, exports) triple parsed
// from a wide-table sheet, already scaled to rupees.
type RawEntry struct {
	Name    string  `json:"name"`
	Imports float64 `json:"imports"`
	Exports float64 `json:"exports"`
}

// TradeRecord is one entity's trade position for a fiscal year.
// Monetary values are in rupees (source sheets carry thousands).
type TradeRecord struct {
	Name            string  `json:"name"`
	Imports         float64 `json:"imports"`
	Exports         float64 `json:"exports"`
	TradeBalance    float64 `json:"tradeBalance"`
	TotalTrade      float64 `json:"totalTrade"`
	ImportGrowth    float64 `json:"importGrowth"`
	ExportGrowth    float64 `json:"exportGrowth"`
	CoverageRatio   float64 `json:"coverageRatio"`
	Competitiveness float64 `json:"competitiveness"`
}

// ResolvedRecord is a TradeRecord enriched with reference data.
type ResolvedRecord struct {
	TradeRecord
	Region string     `json:"region,omitempty"`
	ISO    string     `json:"iso,omitempty"`
	Coords *[2]float64 `json:"coords,omitempty"`
}

// TrendSeries holds parallel arrays over every fiscal year for one
// entity. All slices have the same length as Years.
type TrendSeries struct {
	Name         string    `json:"name"`
	Years        []string  `json:"years"`
	Imports      []float64 `json:"imports"`
	Exports      []float64 `json:"exports"`
	TradeBalance []float64 `json:"tradeBalance"`
	TotalTrade   []float64 `json:"totalTrade"`
}

// NewTrendSeries returns a zero-filled series over the given years.
func NewTrendSeries(name string, years []string) *TrendSeries {
	n := len(years)
	return &TrendSeries{
		Name:         name,
		Years:        years,
		Imports:      make([]float64, n),
		Exports:      make([]float64, n),
		TradeBalance: make([]float64, n),
		TotalTrade:   make([]float64, n),
	}
}
