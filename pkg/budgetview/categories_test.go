package budgetview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategoriesData(t *testing.T) {
	data := rawJSON(t, `{
		"categories": {
			"groceries": {"amount": "120.50", "transactions": ["t1", "t2"]},
			"rent": {"amount": "800.00", "transactions": []},
			"junk": "not an object",
			"typed-amount": {"amount": 12, "transactions": ["t3"]}
		}
	}`).(map[string]interface{})

	d := ParseCategoriesData(data)
	require.NotNil(t, d)
	assert.Equal(t, KindCategories, d.Kind())

	// Non-object entries are dropped; mistyped amounts are omitted but the
	// entry survives
	require.Len(t, d.Categories, 3)
	assert.Equal(t, "120.50", d.Categories["groceries"].Amount)
	assert.Equal(t, []string{"t1", "t2"}, d.Categories["groceries"].Transactions)
	assert.Empty(t, d.Categories["typed-amount"].Amount)
	assert.Equal(t, []string{"t3"}, d.Categories["typed-amount"].Transactions)
}

func TestCategoriesData_Total(t *testing.T) {
	data := rawJSON(t, `{
		"categories": {
			"groceries": {"amount": "120.50"},
			"rent": {"amount": "800.00"},
			"broken": {"amount": 55},
			"unparseable": {"amount": "n/a"}
		}
	}`).(map[string]interface{})

	d := ParseCategoriesData(data)

	// Only the categories that passed validation contribute
	assert.InDelta(t, 920.50, d.Total(), 1e-9)
}

func TestCategoriesData_TotalEmpty(t *testing.T) {
	d := ParseCategoriesData(map[string]interface{}{})
	assert.Zero(t, d.Total())
}
