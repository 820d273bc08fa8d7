package budgetview

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawJSON(t *testing.T, s string) interface{} {
	t.Helper()
	var raw interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &raw))
	return raw
}

func TestParseTimeseries_DropsMalformedPoints(t *testing.T) {
	raw := rawJSON(t, `[
		{"date": "2021-01-01", "value": {"credit": "10", "debit": "5", "net": "5"}},
		"not an object",
		{"date": "2021-02-01", "value": "not an object"},
		{"date": "2021-03-01", "value": {"credit": "10"}},
		{"date": 42, "value": {"credit": "10", "debit": "5", "net": "5"}},
		{"date": "garbage", "value": {"credit": "10", "debit": "5", "net": "5"}},
		{"date": "2021-04-01", "value": {"credit": "30", "debit": "20", "net": "10"}}
	]`)

	ts := ParseTimeseries(raw, ParseCashflowPoint)
	require.NotNil(t, ts)

	// Exactly the well-formed points survive, in original relative order
	require.Len(t, ts.Points, 2)
	assert.Equal(t, "2021-01-01", ts.Points[0].Date.String())
	assert.Equal(t, "2021-04-01", ts.Points[1].Date.String())
	assert.Equal(t, 30.0, ts.Points[1].Value.Credit)
}

func TestParseTimeseries_NotAnArray(t *testing.T) {
	assert.Nil(t, ParseTimeseries(rawJSON(t, `{"date": "2021-01-01"}`), ParseCashflowPoint))
}

func TestParseSeriesValues(t *testing.T) {
	datum := rawJSON(t, `{"alex": "12.50", "sam": "7", "bad": 3, "worse": "xyz"}`).(map[string]interface{})

	values, ok := parseSeriesValues(datum)
	require.True(t, ok)
	assert.Equal(t, SeriesValues{"alex": 12.50, "sam": 7}, values)
}

func TestTimePoint_UnixMillis(t *testing.T) {
	p := TimePoint[SeriesValues]{Date: NewDate(1970, 1, 2)}
	assert.Equal(t, int64(24*60*60*1000), p.UnixMillis())
}
