package budgetview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		invert bool
		want   string
	}{
		{"simple", "17.25", false, "$17.25"},
		{"rounds to cents", "17.2", false, "$17.20"},
		{"integer", "5", false, "$5.00"},
		{"thousands grouping", "1234567.89", false, "$1,234,567.89"},
		{"exactly one thousand", "1000", false, "$1,000.00"},
		{"inverted debit", "17.25", true, "-$17.25"},
		{"negative input", "-42.50", false, "-$42.50"},
		{"inverting a negative", "-42.50", true, "$42.50"},
		{"whitespace tolerated", " 9.99 ", false, "$9.99"},
		{"unparseable", "N/A", false, ""},
		{"empty", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.amount, tt.invert))
		})
	}
}

func TestFormatMoneyFloat(t *testing.T) {
	assert.Equal(t, "$1,234.57", FormatMoneyFloat(1234.567))
	assert.Equal(t, "-$0.50", FormatMoneyFloat(-0.5))
	assert.Equal(t, "$0.00", FormatMoneyFloat(0))
}

func TestFieldName(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"accountName", "Account Name"},
		{"amount", "Amount"},
		{"originalDescription", "Original Description"},
		{"transferDestinationAccount", "Transfer Destination Account"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FieldName(tt.field))
	}
}

func TestTransaction_Render(t *testing.T) {
	txn := &Transaction{
		AccountName:     "Checking",
		Amount:          "1234.5",
		Category:        "groceries",
		Date:            NewDate(2021, 3, 15),
		Description:     "Market",
		Tags:            []string{"food", "weekly"},
		TransactionType: TransactionDebit,
	}

	assert.Equal(t, "Checking", txn.Render("accountName"))
	assert.Equal(t, "-$1,234.50", txn.Render("amount"))
	assert.Equal(t, "3/15/2021", txn.Render("date"))
	assert.Equal(t, "food, weekly", txn.Render("tags"))
	assert.Equal(t, "", txn.Render("noSuchField"))

	credit := &Transaction{Amount: "50", TransactionType: TransactionCredit}
	assert.Equal(t, "$50.00", credit.Render("amount"))

	zero := &Transaction{}
	assert.Equal(t, "", zero.Render("date"))
}
