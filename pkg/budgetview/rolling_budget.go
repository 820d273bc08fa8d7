package budgetview

// RollingBudgetData carries each participant's remaining budget and the ids
// of the transactions that produced it.
type RollingBudgetData struct {
	// Budgets maps person -> remaining budget amount (decimal string)
	Budgets map[string]string

	// Transactions lists contributing transaction ids
	Transactions []string

	// Timeseries optionally tracks per-person amounts over time
	Timeseries *Timeseries[SeriesValues]
}

// Kind implements ReportData
func (d *RollingBudgetData) Kind() ReportKind { return KindRollingBudget }

// ParseRollingBudgetData parses a raw rolling budget payload. Budget entries
// and transaction ids of the wrong type are dropped individually.
func ParseRollingBudgetData(data map[string]interface{}) *RollingBudgetData {
	d := &RollingBudgetData{
		Budgets:      make(map[string]string),
		Transactions: []string{},
	}
	if budgets, ok := data["budgets"].(map[string]interface{}); ok {
		for person, amount := range budgets {
			if s, ok := amount.(string); ok {
				d.Budgets[person] = s
			}
		}
	}
	if transactions, ok := data["transactions"].([]interface{}); ok {
		for _, id := range transactions {
			if s, ok := id.(string); ok {
				d.Transactions = append(d.Transactions, s)
			}
		}
	}
	if raw, ok := data["timeseries"].([]interface{}); ok {
		d.Timeseries = ParseTimeseries(raw, parseSeriesValues)
	}
	return d
}
