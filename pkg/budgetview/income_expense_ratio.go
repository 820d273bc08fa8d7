package budgetview

import "strconv"

// IncomeExpenseRatioDatum is one side (credit or debit) of an income/expense
// ratio report: per-tag amounts plus an "other" remainder, all decimal
// strings. The other amount is accepted as a string or a JSON number.
type IncomeExpenseRatioDatum struct {
	ByTag map[string]string
	Other string
}

// ParseIncomeExpenseRatioDatum parses one side of the ratio payload.
func ParseIncomeExpenseRatioDatum(data map[string]interface{}) *IncomeExpenseRatioDatum {
	d := &IncomeExpenseRatioDatum{
		ByTag: make(map[string]string),
	}
	switch other := data["other"].(type) {
	case string:
		d.Other = other
	case float64:
		d.Other = strconv.FormatFloat(other, 'f', -1, 64)
	}
	if byTag, ok := data["by_tag"].(map[string]interface{}); ok {
		for tag, amount := range byTag {
			if s, ok := amount.(string); ok {
				d.ByTag[tag] = s
			}
		}
	}
	return d
}

// Total sums the float coercion of the other amount and every tag amount.
// Amounts that failed validation contribute nothing.
func (d *IncomeExpenseRatioDatum) Total() float64 {
	total := 0.0
	if f, ok := parseAmount(d.Other); ok {
		total += f
	}
	for _, amount := range d.ByTag {
		if f, ok := parseAmount(amount); ok {
			total += f
		}
	}
	return total
}

// IncomeExpenseRatioData pairs the credit and debit ratio breakdowns.
type IncomeExpenseRatioData struct {
	Credit *IncomeExpenseRatioDatum
	Debit  *IncomeExpenseRatioDatum
}

// Kind implements ReportData
func (d *IncomeExpenseRatioData) Kind() ReportKind { return KindIncomeExpenseRatio }

// ParseIncomeExpenseRatioData parses a raw ratio payload; either side is left
// nil when absent or mistyped.
func ParseIncomeExpenseRatioData(data map[string]interface{}) *IncomeExpenseRatioData {
	d := &IncomeExpenseRatioData{}
	if credit, ok := data["credit"].(map[string]interface{}); ok {
		d.Credit = ParseIncomeExpenseRatioDatum(credit)
	}
	if debit, ok := data["debit"].(map[string]interface{}); ok {
		d.Debit = ParseIncomeExpenseRatioDatum(debit)
	}
	return d
}
