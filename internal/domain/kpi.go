package domain

// KPIEntry holds externally supplied targets per region. Population, GDP and
// Target are free-text magnitude strings ("1.4 B", "75 L") as entered in the
// KPI sheet; they are parsed on demand and never rewritten by this system.
type KPIEntry struct {
	Name       string `json:"name"`
	Population string `json:"population,omitempty"`
	GDP        string `json:"gdp,omitempty"`
	Target     string `json:"target,omitempty"`
}

// KPIData maps normalized region keys to their KPI entries.
type KPIData map[string]KPIEntry
