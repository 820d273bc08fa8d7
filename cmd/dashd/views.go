package main

import (
	"sort"

	"github.com/budgetview/budgetview-go/pkg/budgetview"
	"github.com/shopspring/decimal"
)

// ReportSummary is the list-view projection of one report
type ReportSummary struct {
	Key        string                 `json:"key"`
	Name       string                 `json:"name"`
	Kind       budgetview.ReportKind  `json:"kind"`
	Timeframes []budgetview.Timeframe `json:"timeframes,omitempty"`
}

func summarize(r *budgetview.Report) ReportSummary {
	s := ReportSummary{
		Key:  r.Key,
		Name: r.Info.Name,
		Kind: r.Info.Config.Type,
	}
	if r.Timed != nil {
		s.Timeframes = r.Timed.Populated()
	}
	return s
}

// BucketView is one bucket of a timed report
type BucketView struct {
	Date string      `json:"date"`
	View interface{} `json:"view"`
}

// TimeframeView is one granularity of a timed report: the most recent buckets
// (newest first), the trailing rolling statistics, and how many buckets exist
// in total so clients can offer an expand toggle.
type TimeframeView struct {
	Timeframe    budgetview.Timeframe `json:"timeframe"`
	SixMonth     budgetview.Stats     `json:"sixMonth"`
	OneYear      budgetview.Stats     `json:"oneYear"`
	Buckets      []BucketView         `json:"buckets"`
	TotalBuckets int                  `json:"totalBuckets"`
}

// ReportView is the full projection of one report
type ReportView struct {
	Key        string                `json:"key"`
	Name       string                `json:"name"`
	Kind       budgetview.ReportKind `json:"kind"`
	View       interface{}           `json:"view,omitempty"`
	Timeframes []TimeframeView       `json:"timeframes,omitempty"`
}

// buildReportView projects a report for display. Timed reports render one
// sub-view per populated granularity with the most recent `recent` buckets;
// full expands to the whole history. Simple reports render the bare variant.
func buildReportView(r *budgetview.Report, recent int, full bool) ReportView {
	view := ReportView{
		Key:  r.Key,
		Name: r.Info.Name,
		Kind: r.Info.Config.Type,
	}

	if r.Timed == nil {
		view.View = variantView(r.Info, r.Data, budgetview.Date{})
		return view
	}

	for _, tf := range r.Timed.Populated() {
		buckets := r.Timed.By(tf)
		dates := budgetview.SortedDates(buckets)

		// Newest first
		for i, j := 0, len(dates)-1; i < j; i, j = i+1, j-1 {
			dates[i], dates[j] = dates[j], dates[i]
		}
		if !full && len(dates) > recent {
			dates = dates[:recent]
		}

		tfView := TimeframeView{
			Timeframe:    tf,
			SixMonth:     budgetview.TrailingStats(buckets, 6),
			OneYear:      budgetview.TrailingStats(buckets, 12),
			TotalBuckets: len(buckets),
		}
		for _, date := range dates {
			tfView.Buckets = append(tfView.Buckets, BucketView{
				Date: date.String(),
				View: variantView(r.Info, buckets[date], date),
			})
		}
		view.Timeframes = append(view.Timeframes, tfView)
	}
	return view
}

// variantView dispatches to the per-variant display projection. asOf selects
// the rolling budget contribution schedule; the zero date means "latest".
func variantView(info *budgetview.ReportInfo, data budgetview.ReportData, asOf budgetview.Date) interface{} {
	switch d := data.(type) {
	case *budgetview.RollingBudgetData:
		return rollingBudgetView(info, d, asOf)
	case *budgetview.CashflowData:
		return cashflowView(info, d)
	case *budgetview.CategoriesData:
		return categoriesView(info, d)
	case *budgetview.IncomeExpenseRatioData:
		return incomeExpenseRatioView(d)
	default:
		return nil
	}
}

type cashflowViewModel struct {
	Income  string `json:"income,omitempty"`
	Expense string `json:"expense"`
	Diff    string `json:"diff,omitempty"`
	Points  int    `json:"points,omitempty"`
}

func cashflowView(info *budgetview.ReportInfo, d *budgetview.CashflowData) cashflowViewModel {
	view := cashflowViewModel{
		Expense: budgetview.FormatMoney(d.Debit, false),
	}
	if d.Timeseries != nil {
		view.Points = len(d.Timeseries.Points)
	}
	if info.UI != nil && info.UI.ExpensesOnly {
		return view
	}
	view.Income = budgetview.FormatMoney(d.Credit, false)
	if info.UI != nil && info.UI.ShowDiff {
		credit, errC := decimal.NewFromString(d.Credit)
		debit, errD := decimal.NewFromString(d.Debit)
		if errC == nil && errD == nil {
			view.Diff = budgetview.FormatMoneyFloat(credit.Sub(debit).InexactFloat64())
		}
	}
	return view
}

type categoryViewModel struct {
	Category     string `json:"category"`
	Amount       string `json:"amount"`
	Transactions int    `json:"transactions"`
}

type categoriesViewModel struct {
	Total      string              `json:"total"`
	Categories []categoryViewModel `json:"categories"`
}

func categoriesView(info *budgetview.ReportInfo, d *budgetview.CategoriesData) categoriesViewModel {
	// Debit-only reports display expenses inverted and smallest-first
	invert := info.OnlyType == "Debit"

	names := make([]string, 0, len(d.Categories))
	for name := range d.Categories {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, _ := decimal.NewFromString(d.Categories[names[i]].Amount)
		b, _ := decimal.NewFromString(d.Categories[names[j]].Amount)
		if invert {
			return a.LessThan(b)
		}
		return b.LessThan(a)
	})

	view := categoriesViewModel{
		Total: budgetview.FormatMoneyFloat(d.Total() * signOf(invert)),
	}
	for _, name := range names {
		c := d.Categories[name]
		view.Categories = append(view.Categories, categoryViewModel{
			Category:     name,
			Amount:       budgetview.FormatMoney(c.Amount, invert),
			Transactions: len(c.Transactions),
		})
	}
	return view
}

func signOf(invert bool) float64 {
	if invert {
		return -1
	}
	return 1
}

type personBudgetViewModel struct {
	Person     string  `json:"person"`
	Budget     string  `json:"budget"`
	Proportion float64 `json:"proportion"`
}

type rollingBudgetViewModel struct {
	Split   string                  `json:"split"`
	Budgets []personBudgetViewModel `json:"budgets"`
}

func rollingBudgetView(info *budgetview.ReportInfo, d *budgetview.RollingBudgetData, asOf budgetview.Date) rollingBudgetViewModel {
	view := rollingBudgetViewModel{}

	var amounts map[string]string
	if cfg := info.Config.RollingBudget; cfg != nil {
		view.Split = cfg.Split
		if asOf.IsZero() {
			amounts = cfg.LatestAmounts()
		} else {
			amounts = cfg.AmountsAsOf(asOf)
		}
	}
	proportions := splitProportions(amounts)

	people := make([]string, 0, len(d.Budgets))
	for person := range d.Budgets {
		people = append(people, person)
	}
	sort.Strings(people)

	for _, person := range people {
		view.Budgets = append(view.Budgets, personBudgetViewModel{
			Person:     person,
			Budget:     budgetview.FormatMoney(d.Budgets[person], false),
			Proportion: proportions[person],
		})
	}
	return view
}

// splitProportions turns a contribution schedule into each person's share of
// the split person's transactions.
func splitProportions(amounts map[string]string) map[string]float64 {
	parts := make(map[string]decimal.Decimal, len(amounts))
	total := decimal.Zero
	for person, amount := range amounts {
		d, err := decimal.NewFromString(amount)
		if err != nil {
			continue
		}
		parts[person] = d
		total = total.Add(d)
	}

	proportions := make(map[string]float64, len(parts))
	if total.IsZero() {
		return proportions
	}
	for person, part := range parts {
		proportions[person] = part.Div(total).InexactFloat64()
	}
	return proportions
}

type taggedAmountViewModel struct {
	Tag     string  `json:"tag"`
	Amount  string  `json:"amount"`
	Percent float64 `json:"percent"`
}

type ratioDatumViewModel struct {
	Total string                  `json:"total"`
	Tags  []taggedAmountViewModel `json:"tags"`
}

type incomeExpenseRatioViewModel struct {
	Credit *ratioDatumViewModel `json:"credit,omitempty"`
	Debit  *ratioDatumViewModel `json:"debit,omitempty"`
}

func incomeExpenseRatioView(d *budgetview.IncomeExpenseRatioData) incomeExpenseRatioViewModel {
	// Both sides show percentages of total income, as the ratio is the point
	totalCredit := 0.0
	if d.Credit != nil {
		totalCredit = d.Credit.Total()
	}

	view := incomeExpenseRatioViewModel{}
	if d.Credit != nil {
		view.Credit = ratioDatumView(d.Credit, totalCredit)
	}
	if d.Debit != nil {
		view.Debit = ratioDatumView(d.Debit, totalCredit)
	}
	return view
}

func ratioDatumView(d *budgetview.IncomeExpenseRatioDatum, totalCredit float64) *ratioDatumViewModel {
	view := &ratioDatumViewModel{
		Total: budgetview.FormatMoneyFloat(d.Total()),
	}

	tags := make([]string, 0, len(d.ByTag))
	for tag := range d.ByTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		view.Tags = append(view.Tags, taggedAmountViewModel{
			Tag:     tag,
			Amount:  budgetview.FormatMoney(d.ByTag[tag], false),
			Percent: percentOf(d.ByTag[tag], totalCredit),
		})
	}
	if d.Other != "" {
		view.Tags = append(view.Tags, taggedAmountViewModel{
			Tag:     "other",
			Amount:  budgetview.FormatMoney(d.Other, false),
			Percent: percentOf(d.Other, totalCredit),
		})
	}
	return view
}

func percentOf(amount string, total float64) float64 {
	if total == 0 {
		return 0
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return 0
	}
	return d.InexactFloat64() / total * 100
}
