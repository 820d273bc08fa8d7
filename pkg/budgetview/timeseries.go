package budgetview

// TimePoint is one dated sample in a report timeseries.
type TimePoint[T any] struct {
	Date  Date
	Value T
}

// UnixMillis returns the point's timestamp in milliseconds, the form chart
// consumers plot on the x axis.
func (p TimePoint[T]) UnixMillis() int64 {
	return p.Date.UnixMilli()
}

// Timeseries is an ordered list of dated samples. Points keep the insertion
// order of the source array; consumers sort on read.
type Timeseries[T any] struct {
	Points []TimePoint[T]
}

// ParseTimeseries parses a raw `[{date, value}]` array with a per-point value
// parser. A point is dropped when the entry is not an object, its value is
// not an object, the value parser rejects it, or the date is not a parseable
// date string. Dropping is per-point; the rest of the series survives.
func ParseTimeseries[T any](raw interface{}, parseValue func(map[string]interface{}) (T, bool)) *Timeseries[T] {
	entries, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	ts := &Timeseries[T]{}
	for _, entry := range entries {
		datum, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		value, ok := datum["value"].(map[string]interface{})
		if !ok {
			continue
		}
		parsed, ok := parseValue(value)
		if !ok {
			continue
		}
		dateStr, ok := datum["date"].(string)
		if !ok {
			continue
		}
		date, err := ParseDate(dateStr)
		if err != nil {
			continue
		}
		ts.Points = append(ts.Points, TimePoint[T]{Date: date, Value: parsed})
	}
	return ts
}

// SeriesValues is the per-point value shape shared by the rolling budget and
// categories timeseries: a name-keyed mapping of float-coerced amounts.
type SeriesValues map[string]float64

// parseSeriesValues accepts any object, keeping only entries whose values are
// parseable decimal strings. It never rejects a point outright.
func parseSeriesValues(datum map[string]interface{}) (SeriesValues, bool) {
	values := make(SeriesValues, len(datum))
	for k, v := range datum {
		s, ok := v.(string)
		if !ok {
			continue
		}
		f, ok := parseAmount(s)
		if !ok {
			continue
		}
		values[k] = f
	}
	return values, true
}
