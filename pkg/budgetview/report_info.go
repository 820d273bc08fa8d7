package budgetview

import "sort"

// UIConfig carries optional display hints for a report.
type UIConfig struct {
	ShowDiff     bool
	ExpensesOnly bool
}

// RollingBudgetConfig is the variant-specific configuration of a rolling
// budget report: whose transactions get split, when the budget starts, and a
// date-keyed schedule of per-person contribution amounts. The schedule in
// force at any date is the one with the latest start not after it.
type RollingBudgetConfig struct {
	Split     string
	StartDate Date

	// Amounts maps schedule start date -> person -> contribution (decimal string)
	Amounts map[Date]map[string]string
}

// ParseRollingBudgetConfig parses the rolling budget config blob, keeping
// only fields and schedule entries of the expected types.
func ParseRollingBudgetConfig(data map[string]interface{}) *RollingBudgetConfig {
	c := &RollingBudgetConfig{
		Amounts: make(map[Date]map[string]string),
	}
	if split, ok := data["split"].(string); ok {
		c.Split = split
	}
	if startDate, ok := data["start_date"].(string); ok {
		if d, err := ParseDate(startDate); err == nil {
			c.StartDate = d
		}
	}
	if amounts, ok := data["amounts"].(map[string]interface{}); ok {
		for dateStr, raw := range amounts {
			inner, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			date, err := ParseDate(dateStr)
			if err != nil {
				continue
			}
			schedule := make(map[string]string, len(inner))
			for person, amount := range inner {
				if s, ok := amount.(string); ok {
					schedule[person] = s
				}
			}
			c.Amounts[date] = schedule
		}
	}
	return c
}

// AmountsAsOf returns the contribution schedule in force at the given date:
// the entry with the latest start date not after it, falling back to the
// earliest schedule when none has started yet. Returns nil when the config
// carries no schedules at all.
func (c *RollingBudgetConfig) AmountsAsOf(date Date) map[string]string {
	if len(c.Amounts) == 0 {
		return nil
	}

	starts := make([]Date, 0, len(c.Amounts))
	for start := range c.Amounts {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j].Time) })

	selected := starts[0]
	for _, start := range starts {
		if start.After(date.Time) {
			break
		}
		selected = start
	}
	return c.Amounts[selected]
}

// LatestAmounts returns the most recent contribution schedule.
func (c *RollingBudgetConfig) LatestAmounts() map[string]string {
	var latest Date
	var schedule map[string]string
	for start, s := range c.Amounts {
		if schedule == nil || start.After(latest.Time) {
			latest = start
			schedule = s
		}
	}
	return schedule
}

// ReportConfig is the variant tag plus the rolling budget extras when the tag
// selects that variant.
type ReportConfig struct {
	Type          ReportKind
	RollingBudget *RollingBudgetConfig
}

// ReportInfo is the static configuration of one report. The variant tag fixed
// at parse time determines which data parser handles this report's payload.
type ReportInfo struct {
	Name     string
	Config   ReportConfig
	UI       *UIConfig
	SkipTags []string
	OnlyType string

	// Granularities the backend additionally precomputed
	ByWeek    bool
	ByMonth   bool
	ByQuarter bool
	ByYear    bool
}

// ParseReportInfo parses a raw report config blob. Mistyped fields are left
// unset; it never fails outright.
func ParseReportInfo(report map[string]interface{}) *ReportInfo {
	info := &ReportInfo{}
	if name, ok := report["name"].(string); ok {
		info.Name = name
	}
	if skipTags, ok := report["skip_tags"].([]interface{}); ok {
		info.SkipTags = []string{}
		for _, tag := range skipTags {
			if s, ok := tag.(string); ok {
				info.SkipTags = append(info.SkipTags, s)
			}
		}
	}
	if onlyType, ok := report["only_type"].(string); ok {
		info.OnlyType = onlyType
	}
	if byWeek, ok := report["by_week"].(bool); ok {
		info.ByWeek = byWeek
	}
	if byMonth, ok := report["by_month"].(bool); ok {
		info.ByMonth = byMonth
	}
	if byQuarter, ok := report["by_quarter"].(bool); ok {
		info.ByQuarter = byQuarter
	}
	if byYear, ok := report["by_year"].(bool); ok {
		info.ByYear = byYear
	}

	if config, ok := report["config"].(map[string]interface{}); ok {
		if ty, ok := config["type"].(string); ok {
			info.Config.Type = ReportKind(ty)
		}
		if info.Config.Type == KindRollingBudget {
			info.Config.RollingBudget = ParseRollingBudgetConfig(config)
		}
	}
	if ui, ok := report["ui_config"].(map[string]interface{}); ok {
		info.UI = &UIConfig{}
		if showDiff, ok := ui["show_diff"].(bool); ok {
			info.UI.ShowDiff = showDiff
		}
		if expensesOnly, ok := ui["expenses_only"].(bool); ok {
			info.UI.ExpensesOnly = expensesOnly
		}
	}
	return info
}

// ParseReportData dispatches the raw payload to the variant parser selected
// by this report's config tag. Unknown tags yield nil rather than an error so
// future variants degrade to "no data".
func (info *ReportInfo) ParseReportData(raw interface{}) ReportData {
	data, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}
	switch info.Config.Type {
	case KindRollingBudget:
		return ParseRollingBudgetData(data)
	case KindCashflow:
		return ParseCashflowData(data)
	case KindCategories:
		return ParseCategoriesData(data)
	case KindIncomeExpenseRatio:
		return ParseIncomeExpenseRatioData(data)
	default:
		return nil
	}
}

// ParseData parses a report's data payload. The presence of any by_* key in
// the payload is the sole discriminator between a timed report and a simple
// one: if any granularity key holds a value the timed path is taken
// exclusively. A by_* key carrying false, zero, or an empty string counts as
// absent. Exactly one of the returned values is non-nil on success; both are
// nil when the payload has no recognizable data.
func (info *ReportInfo) ParseData(data map[string]interface{}) (ReportData, *TimedReportData) {
	if hasTimeframeKeys(data) {
		return nil, ParseTimedReportData(info, data)
	}
	return info.ParseReportData(data), nil
}

func hasTimeframeKeys(data map[string]interface{}) bool {
	for _, key := range []string{"by_week", "by_month", "by_quarter", "by_year"} {
		switch v := data[key].(type) {
		case nil:
		case bool:
			if v {
				return true
			}
		case float64:
			if v != 0 {
				return true
			}
		case string:
			if v != "" {
				return true
			}
		default:
			return true
		}
	}
	return false
}
