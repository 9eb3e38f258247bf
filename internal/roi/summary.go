package roi

// SummaryRow holds the margin impact of one feature for every growth
// scenario, with optional net figures when an upgrade cost is configured.
type SummaryRow struct {
	Feature Feature                    `json:"feature"`
	Label   string                     `json:"label"`
	Margin  map[GrowthScenario]float64 `json:"margin"`
	Net     map[GrowthScenario]float64 `json:"net,omitempty"`
	Costs   map[GrowthScenario]float64 `json:"costs,omitempty"`
}

// Summary is the growth-from-upgrading table: one row per feature, columns
// per scenario. It is recomputed from current inputs on every call, never
// cached.
type Summary struct {
	Rows []SummaryRow `json:"rows"`
}

// GetSummary computes the margin impact of every feature across every
// scenario. When upgrade costs are present for a feature, net impact
// (margin impact minus upgrade cost) is included alongside the gross figure.
func GetSummary(m MerchantMetrics, upgrades UpgradeMetrics) (Summary, error) {
	rows := make([]SummaryRow, 0, len(Features))
	for _, feature := range Features {
		row := SummaryRow{
			Feature: feature,
			Label:   feature.Label(),
			Margin:  make(map[GrowthScenario]float64, len(Scenarios)),
		}
		for _, scenario := range Scenarios {
			impact, err := EstimateImpact(m, feature, scenario)
			if err != nil {
				return Summary{}, err
			}
			row.Margin[scenario] = impact.MarginImpact

			if cost, ok := upgrades.Cost(feature, scenario); ok {
				if row.Net == nil {
					row.Net = make(map[GrowthScenario]float64, len(Scenarios))
					row.Costs = make(map[GrowthScenario]float64, len(Scenarios))
				}
				row.Net[scenario] = impact.MarginImpact - cost
				row.Costs[scenario] = cost
			}
		}
		rows = append(rows, row)
	}
	return Summary{Rows: rows}, nil
}
