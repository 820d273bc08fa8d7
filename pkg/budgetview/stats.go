package budgetview

import (
	"math"
	"sort"
)

// Stats holds rolling statistics over a window of bucket totals.
type Stats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Count  int     `json:"count"`
}

// MostRecent returns the latest bucket date in a timed mapping. ok is false
// when the mapping is empty.
func MostRecent(buckets map[Date]ReportData) (Date, bool) {
	var most Date
	found := false
	for date := range buckets {
		if !found || date.After(most.Time) {
			most = date
			found = true
		}
	}
	return most, found
}

// BucketStats computes the mean and median of bucket totals at or after the
// start date. Variants without a total contribute zero, matching the display
// layer's behavior. The median sorts totals ascending and takes the element
// at min(round(n/2), n-1). An empty window yields zero stats.
func BucketStats(buckets map[Date]ReportData, start Date) Stats {
	totals := make([]float64, 0, len(buckets))
	for date, data := range buckets {
		if date.Before(start.Time) {
			continue
		}
		if t, ok := data.(Totaler); ok {
			totals = append(totals, t.Total())
		} else {
			totals = append(totals, 0)
		}
	}
	if len(totals) == 0 {
		return Stats{}
	}

	sort.Float64s(totals)

	medianIndex := int(math.Round(float64(len(totals)) / 2))
	if medianIndex > len(totals)-1 {
		medianIndex = len(totals) - 1
	}

	sum := 0.0
	for _, total := range totals {
		sum += total
	}

	return Stats{
		Mean:   sum / float64(len(totals)),
		Median: totals[medianIndex],
		Count:  len(totals),
	}
}

// TrailingStats computes BucketStats over the trailing window of the given
// number of months, anchored at the most recent bucket.
func TrailingStats(buckets map[Date]ReportData, months int) Stats {
	most, ok := MostRecent(buckets)
	if !ok {
		return Stats{}
	}
	start := Date{most.AddDate(0, -months, 0)}
	return BucketStats(buckets, start)
}

// SortedDates returns the bucket dates in ascending order.
func SortedDates(buckets map[Date]ReportData) []Date {
	dates := make([]Date, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j].Time) })
	return dates
}
