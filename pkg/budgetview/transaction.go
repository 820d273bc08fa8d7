package budgetview

import (
	"strconv"
	"time"
)

// TransactionType is the ledger direction of a transaction
type TransactionType string

const (
	// TransactionDebit is money leaving an account
	TransactionDebit TransactionType = "Debit"

	// TransactionCredit is money entering an account
	TransactionCredit TransactionType = "Credit"

	// TransactionTransfer is money moving between two owned accounts
	TransactionTransfer TransactionType = "Transfer"
)

// Transaction is one ledger entry. Monetary amounts are decimal values
// transported as strings; they are only coerced to floating point for
// computation, never for storage.
type Transaction struct {
	AccountName                string
	Amount                     string
	Category                   string
	Date                       Date
	Description                string
	Labels                     string
	Notes                      string
	OriginalCategory           string
	OriginalDescription        string
	Person                     string
	Tags                       []string
	TransactionType            TransactionType
	TransferDestinationAccount string
}

// ParseTransaction validates a raw JSON value into a Transaction. Every
// required field must be present with the correct type or the whole record is
// rejected; no partial Transaction is ever returned. The amount may arrive as
// a string or a JSON number.
func ParseTransaction(raw interface{}) (*Transaction, bool) {
	data, ok := raw.(map[string]interface{})
	if !ok {
		return nil, false
	}

	accountName, ok := data["account_name"].(string)
	if !ok {
		return nil, false
	}
	amount, ok := stringOrNumber(data["amount"])
	if !ok {
		return nil, false
	}
	category, ok := data["category"].(string)
	if !ok {
		return nil, false
	}
	dateStr, ok := data["date"].(string)
	if !ok {
		return nil, false
	}
	date, err := ParseDate(dateStr)
	if err != nil {
		return nil, false
	}
	description, ok := data["description"].(string)
	if !ok {
		return nil, false
	}
	labels, ok := data["labels"].(string)
	if !ok {
		return nil, false
	}
	notes, ok := data["notes"].(string)
	if !ok {
		return nil, false
	}
	originalCategory, ok := data["original_category"].(string)
	if !ok {
		return nil, false
	}
	originalDescription, ok := data["original_description"].(string)
	if !ok {
		return nil, false
	}
	person, ok := data["person"].(string)
	if !ok {
		return nil, false
	}
	rawTags, ok := data["tags"].([]interface{})
	if !ok {
		return nil, false
	}
	transactionType, ok := data["transaction_type"].(string)
	if !ok {
		return nil, false
	}

	t := &Transaction{
		AccountName:         accountName,
		Amount:              amount,
		Category:            category,
		Date:                date,
		Description:         description,
		Labels:              labels,
		Notes:               notes,
		OriginalCategory:    originalCategory,
		OriginalDescription: originalDescription,
		Person:              person,
		Tags:                make([]string, 0, len(rawTags)),
		TransactionType:     TransactionType(transactionType),
	}

	// Non-string tags are skipped, not fatal
	for _, tag := range rawTags {
		if s, ok := tag.(string); ok {
			t.Tags = append(t.Tags, s)
		}
	}

	// Optional, present only for transfers
	if dst, ok := data["transfer_destination_account"].(string); ok {
		t.TransferDestinationAccount = dst
	} else if dst, ok := data["transferDestinationAccount"].(string); ok {
		t.TransferDestinationAccount = dst
	}

	return t, true
}

// ParseTransactions bulk-parses a raw id->record mapping, dropping any record
// that fails validation.
func ParseTransactions(raw map[string]interface{}) map[string]*Transaction {
	parsed := make(map[string]*Transaction, len(raw))
	for id, record := range raw {
		if t, ok := ParseTransaction(record); ok {
			parsed[id] = t
		}
	}
	return parsed
}

// Placeholder id layout: 4-digit year, 2-digit month, 2-digit day, 10-char
// fixed-point amount (6 integer digits + 4 fractional), 1-char type code.
const placeholderIDLen = 19

// PlaceholderFromID synthesizes a degraded-display Transaction from the
// fixed-width fields embedded in a transaction id. Used when an id referenced
// by a report is absent from the transaction mapping, e.g. in a
// privacy-redacted export. This is a display fallback, not an error.
func PlaceholderFromID(id string) *Transaction {
	t := &Transaction{
		AccountName:         "Unknown",
		Amount:              "0",
		Category:            "unknown",
		Description:         "Unknown",
		OriginalDescription: "UNKNOWN",
		Person:              "unknown",
		Tags:                []string{"details not exported"},
	}

	if len(id) < placeholderIDLen {
		return t
	}

	year, errY := strconv.Atoi(id[0:4])
	month, errM := strconv.Atoi(id[4:6])
	day, errD := strconv.Atoi(id[6:8])
	if errY == nil && errM == nil && errD == nil {
		t.Date = NewDate(year, time.Month(month), day)
	}

	t.Amount = id[8:14] + "." + id[14:18]

	switch id[18] {
	case 'D':
		t.TransactionType = TransactionDebit
	case 'C':
		t.TransactionType = TransactionCredit
	case 'T':
		t.TransactionType = TransactionTransfer
	default:
		t.TransactionType = TransactionType(id[18:19])
	}

	return t
}

// stringOrNumber accepts a decimal transported as either a JSON string or a
// JSON number, returning its string form.
func stringOrNumber(v interface{}) (string, bool) {
	switch amount := v.(type) {
	case string:
		return amount, true
	case float64:
		return strconv.FormatFloat(amount, 'f', -1, 64), true
	default:
		return "", false
	}
}
