package budgetview

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRawTransaction() map[string]interface{} {
	raw := map[string]interface{}{}
	err := json.Unmarshal([]byte(`{
		"account_name": "Checking",
		"amount": "42.50",
		"category": "Groceries",
		"date": "2021-03-15",
		"description": "Corner store",
		"labels": "",
		"notes": "",
		"original_category": "GROCERY",
		"original_description": "CORNER STORE #42",
		"person": "alex",
		"tags": ["food", "weekly"],
		"transaction_type": "Debit"
	}`), &raw)
	if err != nil {
		panic(err)
	}
	return raw
}

func TestParseTransaction(t *testing.T) {
	raw := validRawTransaction()

	parsed, ok := ParseTransaction(raw)
	require.True(t, ok)
	require.NotNil(t, parsed)

	assert.Equal(t, "Checking", parsed.AccountName)
	assert.Equal(t, "42.50", parsed.Amount)
	assert.Equal(t, "Groceries", parsed.Category)
	assert.Equal(t, "2021-03-15", parsed.Date.String())
	assert.Equal(t, []string{"food", "weekly"}, parsed.Tags)
	assert.Equal(t, TransactionDebit, parsed.TransactionType)
	assert.Empty(t, parsed.TransferDestinationAccount)
}

func TestParseTransaction_MissingRequiredField(t *testing.T) {
	required := []string{
		"account_name", "amount", "category", "date", "description",
		"labels", "notes", "original_category", "original_description",
		"person", "tags", "transaction_type",
	}

	for _, field := range required {
		t.Run(field, func(t *testing.T) {
			raw := validRawTransaction()
			delete(raw, field)

			parsed, ok := ParseTransaction(raw)
			assert.False(t, ok, "record missing %q must be rejected", field)
			assert.Nil(t, parsed)
		})
	}
}

func TestParseTransaction_WrongFieldType(t *testing.T) {
	tests := []struct {
		field string
		value interface{}
	}{
		{"account_name", 12.0},
		{"category", true},
		{"date", 20210315.0},
		{"date", "not a date"},
		{"tags", "food"},
		{"transaction_type", nil},
	}

	for _, tt := range tests {
		raw := validRawTransaction()
		raw[tt.field] = tt.value

		parsed, ok := ParseTransaction(raw)
		assert.False(t, ok, "record with bad %q must be rejected", tt.field)
		assert.Nil(t, parsed)
	}
}

func TestParseTransaction_AmountAsNumber(t *testing.T) {
	raw := validRawTransaction()
	raw["amount"] = 17.25

	parsed, ok := ParseTransaction(raw)
	require.True(t, ok)
	assert.Equal(t, "17.25", parsed.Amount)
}

func TestParseTransaction_NonStringTagsSkipped(t *testing.T) {
	raw := validRawTransaction()
	raw["tags"] = []interface{}{"food", 3.0, nil, "weekly"}

	parsed, ok := ParseTransaction(raw)
	require.True(t, ok)
	assert.Equal(t, []string{"food", "weekly"}, parsed.Tags)
}

func TestParseTransaction_TransferDestination(t *testing.T) {
	raw := validRawTransaction()
	raw["transaction_type"] = "Transfer"
	raw["transfer_destination_account"] = "Savings"

	parsed, ok := ParseTransaction(raw)
	require.True(t, ok)
	assert.Equal(t, "Savings", parsed.TransferDestinationAccount)
	assert.Equal(t, "Checking -> Savings", parsed.Render("accountName"))
}

func TestParseTransaction_NotAnObject(t *testing.T) {
	parsed, ok := ParseTransaction("nope")
	assert.False(t, ok)
	assert.Nil(t, parsed)
}

func TestParseTransactions_DropsInvalid(t *testing.T) {
	raw := map[string]interface{}{
		"t1": validRawTransaction(),
		"t2": map[string]interface{}{"amount": "1.00"},
		"t3": "garbage",
	}

	parsed := ParseTransactions(raw)
	require.Len(t, parsed, 1)
	assert.Contains(t, parsed, "t1")
}

func TestPlaceholderFromID(t *testing.T) {
	// 2021-03-15, amount 000123.4500, Debit
	id := "202103150001234500D"
	require.Len(t, id, 19)

	placeholder := PlaceholderFromID(id)
	require.NotNil(t, placeholder)

	assert.Equal(t, "2021-03-15", placeholder.Date.String())
	assert.Equal(t, "000123.4500", placeholder.Amount)
	assert.Equal(t, TransactionDebit, placeholder.TransactionType)
	assert.Equal(t, "Unknown", placeholder.AccountName)
	assert.Equal(t, "unknown", placeholder.Category)
	assert.Equal(t, []string{"details not exported"}, placeholder.Tags)
}

func TestPlaceholderFromID_TypeCodes(t *testing.T) {
	tests := []struct {
		code byte
		want TransactionType
	}{
		{'D', TransactionDebit},
		{'C', TransactionCredit},
		{'T', TransactionTransfer},
		{'X', TransactionType("X")},
	}

	for _, tt := range tests {
		id := "202103150001234500" + string(tt.code)
		assert.Equal(t, tt.want, PlaceholderFromID(id).TransactionType)
	}
}

func TestPlaceholderFromID_ShortID(t *testing.T) {
	placeholder := PlaceholderFromID("short")
	require.NotNil(t, placeholder)
	assert.True(t, placeholder.Date.IsZero())
	assert.Equal(t, "0", placeholder.Amount)
}
