package budgetview

// CashflowData summarizes money in vs money out. Credit, debit, and the
// optional precomputed net are decimal strings; fields whose raw type
// mismatches are left empty rather than failing the report.
type CashflowData struct {
	Credit     string
	Debit      string
	Net        string
	Timeseries *Timeseries[CashflowPoint]
}

// Kind implements ReportData
func (d *CashflowData) Kind() ReportKind { return KindCashflow }

// ParseCashflowData parses a raw cashflow payload, keeping only fields of the
// expected type.
func ParseCashflowData(data map[string]interface{}) *CashflowData {
	d := &CashflowData{}
	if credit, ok := data["credit"].(string); ok {
		d.Credit = credit
	}
	if debit, ok := data["debit"].(string); ok {
		d.Debit = debit
	}
	if net, ok := data["net"].(string); ok {
		d.Net = net
	}
	if raw, ok := data["timeseries"].([]interface{}); ok {
		d.Timeseries = ParseTimeseries(raw, ParseCashflowPoint)
	}
	return d
}

// CashflowPoint is one float-coerced {credit, debit, net} timeseries sample.
type CashflowPoint struct {
	Credit float64
	Debit  float64
	Net    float64
}

// ParseCashflowPoint requires all three components as decimal strings;
// a point missing any of them is rejected.
func ParseCashflowPoint(datum map[string]interface{}) (CashflowPoint, bool) {
	var p CashflowPoint

	credit, ok := datum["credit"].(string)
	if !ok {
		return p, false
	}
	debit, ok := datum["debit"].(string)
	if !ok {
		return p, false
	}
	net, ok := datum["net"].(string)
	if !ok {
		return p, false
	}

	if p.Credit, ok = parseAmount(credit); !ok {
		return p, false
	}
	if p.Debit, ok = parseAmount(debit); !ok {
		return p, false
	}
	if p.Net, ok = parseAmount(net); !ok {
		return p, false
	}
	return p, true
}
