package domain

// RegionDealer is a dealer row projected into a region view, sorted by sales.
type RegionDealer struct {
	Name       string  `json:"name"`
	Sales      float64 `json:"sales"`
	State      string  `json:"state"`
	District   string  `json:"district,omitempty"`
	BillingZip string  `json:"billing_zipcode,omitempty"`
	ShippingZip string `json:"shipping_zipcode,omitempty"`
	IsInternal bool    `json:"is_internal"`
}

// AggregatedRegion is the per-region rollup shown on the dashboard. The KPI
// fields (Population, GDP) stay as the free-text magnitudes supplied in the
// KPI sheet; only the target is parsed into a number for the achievement
// calculation.
type AggregatedRegion struct {
	Name          string         `json:"name"`
	CurrentSales  float64        `json:"current_sales"`
	TotalSales    float64        `json:"total_sales"`
	DealerCount   int            `json:"dealer_count"`
	MonthlyTarget float64        `json:"monthly_target"`
	Achievement   string         `json:"achievement"`
	Population    string         `json:"population"`
	GDP           string         `json:"gdp"`
	Dealers       []RegionDealer `json:"dealers,omitempty"`

	// Districts is only populated on single-region views where dealers
	// carry resolved districts.
	Districts map[string]DistrictStats `json:"districts,omitempty"`
}

// DistrictStats accumulates sales per district inside a state view.
type DistrictStats struct {
	Name         string  `json:"name"`
	CurrentSales float64 `json:"current_sales"`
	DealerCount  int     `json:"dealer_count"`
}
