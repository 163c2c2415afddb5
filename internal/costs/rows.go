package costs

import "sort"

// Row is one resource group's aggregated cost over the query window.
type Row struct {
	Cost          float64
	ResourceGroup string
	Currency      string
}

// TopGroups is how many resource groups the ranking table displays. The
// total always covers every group, displayed or not.
const TopGroups = 10

// ParseRows converts the positional rows of a cost-management query
// ([cost, resourceGroup, currency]) into typed rows. Rows that are too short
// or carry a non-numeric cost are dropped rather than failing the report.
func ParseRows(raw [][]interface{}) []Row {
	rows := make([]Row, 0, len(raw))
	for _, r := range raw {
		if len(r) < 3 {
			continue
		}
		cost, ok := r[0].(float64)
		if !ok {
			continue
		}
		group, _ := r[1].(string)
		currency, _ := r[2].(string)
		rows = append(rows, Row{Cost: cost, ResourceGroup: group, Currency: currency})
	}
	return rows
}

// Summary is a set of cost rows ranked by cost with their grand total.
type Summary struct {
	// Rows is sorted by cost descending; ties keep their input order.
	Rows  []Row
	Total float64
}

// Summarize ranks rows by cost descending and totals every row, not just the
// ones a capped display will show.
func Summarize(rows []Row) Summary {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Cost > sorted[j].Cost
	})

	var total float64
	for _, row := range sorted {
		total += row.Cost
	}

	return Summary{Rows: sorted, Total: total}
}

// Percent returns a cost's share of the total in percent, 0 when the total
// is zero.
func (s Summary) Percent(cost float64) float64 {
	if s.Total <= 0 {
		return 0
	}
	return cost / s.Total * 100
}
