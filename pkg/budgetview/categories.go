package budgetview

// Category is one category's slice of a categories report: its amount
// (decimal string, empty when the raw field failed validation) and the ids of
// the transactions behind it.
type Category struct {
	Amount       string
	Transactions []string
}

// CategoriesData breaks spending down by category name.
type CategoriesData struct {
	Categories map[string]*Category
	Timeseries *Timeseries[SeriesValues]
}

// Kind implements ReportData
func (d *CategoriesData) Kind() ReportKind { return KindCategories }

// ParseCategoriesData parses a raw categories payload. Entries that are not
// objects are dropped; within an entry, mistyped fields are simply omitted.
func ParseCategoriesData(data map[string]interface{}) *CategoriesData {
	d := &CategoriesData{
		Categories: make(map[string]*Category),
	}
	if categories, ok := data["categories"].(map[string]interface{}); ok {
		for name, raw := range categories {
			entry, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			c := &Category{Transactions: []string{}}
			if amount, ok := entry["amount"].(string); ok {
				c.Amount = amount
			}
			if transactions, ok := entry["transactions"].([]interface{}); ok {
				for _, id := range transactions {
					if s, ok := id.(string); ok {
						c.Transactions = append(c.Transactions, s)
					}
				}
			}
			d.Categories[name] = c
		}
	}
	if raw, ok := data["timeseries"].([]interface{}); ok {
		d.Timeseries = ParseTimeseries(raw, parseSeriesValues)
	}
	return d
}

// Total sums the float coercion of every validated category amount. Amounts
// that failed validation were dropped at parse time and contribute nothing.
func (d *CategoriesData) Total() float64 {
	total := 0.0
	for _, c := range d.Categories {
		if f, ok := parseAmount(c.Amount); ok {
			total += f
		}
	}
	return total
}
