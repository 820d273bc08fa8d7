package budgetview

// Report is the top-level unit: an opaque key stable across reloads, the
// report's configuration, and its parsed data. Exactly one of Data and Timed
// is set; the presence of any by_* key in the raw payload selects the timed
// path exclusively.
type Report struct {
	Key   string
	Info  *ReportInfo
	Data  ReportData
	Timed *TimedReportData
}

// ParseReport parses one report envelope's parts. Returns nil when the
// payload yields no renderable data (e.g. an unknown variant tag).
func ParseReport(key string, report, data map[string]interface{}) *Report {
	info := ParseReportInfo(report)
	parsed, timed := info.ParseData(data)
	if parsed == nil && timed == nil {
		return nil
	}
	return &Report{
		Key:   key,
		Info:  info,
		Data:  parsed,
		Timed: timed,
	}
}

// ParseReports assembles a best-effort report list from an array of raw
// envelopes. Envelopes failing the top-level shape check (string key, object
// report and data) or whose nested parse fails are skipped; a single
// malformed report never prevents the rest from parsing.
func ParseReports(raw []interface{}) []*Report {
	reports := make([]*Report, 0, len(raw))
	for _, entry := range raw {
		envelope, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		key, ok := envelope["key"].(string)
		if !ok {
			continue
		}
		report, ok := envelope["report"].(map[string]interface{})
		if !ok {
			continue
		}
		data, ok := envelope["data"].(map[string]interface{})
		if !ok {
			continue
		}
		if parsed := ParseReport(key, report, data); parsed != nil {
			reports = append(reports, parsed)
		}
	}
	return reports
}
