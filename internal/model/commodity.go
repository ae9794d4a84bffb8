package model

// CommodityRecord is a per-HS-code trade position for one fiscal
// year, merged from the import and export commodity sheets. A code
// present on only one side carries zeros for the other.
type CommodityRecord struct {
	HSCode      string `json:"hsCode"`
	Description string `json:"description"`
	Unit        string `json:"unit,omitempty"`

	ImportQuantity float64 `json:"importQuantity"`
	ImportValue    float64 `json:"importValue"`
	ImportRevenue  float64 `json:"importRevenue"`
	ExportQuantity float64 `json:"exportQuantity"`
	ExportValue    float64 `json:"exportValue"`

	TradeBalance float64 `json:"tradeBalance"`
	TotalTrade   float64 `json:"totalTrade"`
}

// CommodityCountryRecord is a per-HS-code, per-partner-country trade
// position, merged from the partner import and export sheets with the
// same zero-fill rule as CommodityRecord.
type CommodityCountryRecord struct {
	HSCode      string `json:"hsCode"`
	Description string `json:"description"`
	Country     string `json:"country"`
	Unit        string `json:"unit,omitempty"`

	ImportQuantity float64 `json:"importQuantity"`
	ImportValue    float64 `json:"importValue"`
	ImportRevenue  float64 `json:"importRevenue"`
	ExportQuantity float64 `json:"exportQuantity"`
	ExportValue    float64 `json:"exportValue"`

	TradeBalance    float64 `json:"tradeBalance"`
	TotalTrade      float64 `json:"totalTrade"`
	Competitiveness float64 `json:"competitiveness"`
}

// MergeKey identifies a commodity-country record across sheets.
func (r CommodityCountryRecord) MergeKey() string {
	return r.HSCode + "-" + r.Description + "-" + r.Country
}
