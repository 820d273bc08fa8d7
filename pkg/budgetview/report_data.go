package budgetview

// ReportKind tags the four mutually-exclusive report data variants.
type ReportKind string

const (
	// KindRollingBudget is a per-person rolling budget report
	KindRollingBudget ReportKind = "RollingBudget"

	// KindCashflow is a credit/debit/net summary report
	KindCashflow ReportKind = "Cashflow"

	// KindCategories is a per-category breakdown report
	KindCategories ReportKind = "Categories"

	// KindIncomeExpenseRatio is a tagged income vs expense ratio report
	KindIncomeExpenseRatio ReportKind = "IncomeExpenseRatio"
)

// ReportData is the tagged union over the four report data variants.
type ReportData interface {
	// Kind reports which variant this is
	Kind() ReportKind
}

// Totaler is implemented by variants whose buckets have a single summable
// total. Variants without one contribute zero to rolling statistics.
type Totaler interface {
	Total() float64
}
