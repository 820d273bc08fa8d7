package budgetview

// Timeframe names one of the four bucketing granularities.
type Timeframe string

const (
	// TimeframeWeek buckets by calendar week
	TimeframeWeek Timeframe = "Week"

	// TimeframeMonth buckets by calendar month
	TimeframeMonth Timeframe = "Month"

	// TimeframeQuarter buckets by calendar quarter
	TimeframeQuarter Timeframe = "Quarter"

	// TimeframeYear buckets by calendar year
	TimeframeYear Timeframe = "Year"
)

// Timeframes lists the granularities in ascending bucket size.
var Timeframes = []Timeframe{TimeframeWeek, TimeframeMonth, TimeframeQuarter, TimeframeYear}

// TimedReportData wraps the same report variant recomputed independently per
// calendar granularity, each bucket keyed by its start date. Only the
// granularities present in the payload are populated.
type TimedReportData struct {
	ByWeek    map[Date]ReportData
	ByMonth   map[Date]ReportData
	ByQuarter map[Date]ReportData
	ByYear    map[Date]ReportData
}

// ParseTimedReportData parses a timed payload by re-applying the report's
// variant parser per bucket.
func ParseTimedReportData(info *ReportInfo, data map[string]interface{}) *TimedReportData {
	t := &TimedReportData{}
	if byWeek, ok := data["by_week"].(map[string]interface{}); ok {
		t.ByWeek = mapFromData(info, byWeek)
	}
	if byMonth, ok := data["by_month"].(map[string]interface{}); ok {
		t.ByMonth = mapFromData(info, byMonth)
	}
	if byQuarter, ok := data["by_quarter"].(map[string]interface{}); ok {
		t.ByQuarter = mapFromData(info, byQuarter)
	}
	if byYear, ok := data["by_year"].(map[string]interface{}); ok {
		t.ByYear = mapFromData(info, byYear)
	}
	return t
}

// mapFromData builds one date-keyed bucket mapping. Buckets whose key is not
// a parseable date, or whose payload the variant parser rejects, are dropped
// individually.
func mapFromData(info *ReportInfo, data map[string]interface{}) map[Date]ReportData {
	buckets := make(map[Date]ReportData, len(data))
	for key, raw := range data {
		date, err := ParseDate(key)
		if err != nil {
			continue
		}
		if rd := info.ParseReportData(raw); rd != nil {
			buckets[date] = rd
		}
	}
	return buckets
}

// By selects the mapping for a granularity. Unrecognized timeframes return
// nil; this never fails.
func (t *TimedReportData) By(timeframe Timeframe) map[Date]ReportData {
	switch timeframe {
	case TimeframeWeek:
		return t.ByWeek
	case TimeframeMonth:
		return t.ByMonth
	case TimeframeQuarter:
		return t.ByQuarter
	case TimeframeYear:
		return t.ByYear
	default:
		return nil
	}
}

// Populated lists the granularities that actually carry buckets.
func (t *TimedReportData) Populated() []Timeframe {
	var populated []Timeframe
	for _, tf := range Timeframes {
		if len(t.By(tf)) > 0 {
			populated = append(populated, tf)
		}
	}
	return populated
}
