package budgetview

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Render projects a transaction field to a displayable string. Unknown field
// names render as the empty string. Account names special-case transfers by
// joining source and destination with an arrow.
func (t *Transaction) Render(field string) string {
	switch field {
	case "accountName":
		if t.TransferDestinationAccount != "" {
			return t.AccountName + " -> " + t.TransferDestinationAccount
		}
		return t.AccountName
	case "amount":
		return FormatMoney(t.Amount, t.TransactionType == TransactionDebit)
	case "category":
		return t.Category
	case "date":
		if t.Date.IsZero() {
			return ""
		}
		return t.Date.Format("1/2/2006")
	case "description":
		return t.Description
	case "labels":
		return t.Labels
	case "notes":
		return t.Notes
	case "originalCategory":
		return t.OriginalCategory
	case "originalDescription":
		return t.OriginalDescription
	case "person":
		return t.Person
	case "tags":
		return strings.Join(t.Tags, ", ")
	default:
		return ""
	}
}

// FieldName turns a camelCase field identifier into a display header,
// e.g. "accountName" -> "Account Name".
func FieldName(field string) string {
	var b strings.Builder
	for i, r := range field {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatMoney renders a string-transported decimal amount as US currency.
// Debit amounts are displayed inverted so expenses read as negative money.
// Unparseable amounts render as an empty string.
func FormatMoney(amount string, invert bool) string {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return ""
	}
	if invert {
		d = d.Neg()
	}
	return formatUSD(d)
}

// FormatMoneyFloat renders a computed float amount as US currency.
func FormatMoneyFloat(amount float64) string {
	return formatUSD(decimal.NewFromFloat(amount).Round(2))
}

// parseAmount coerces a string-transported decimal to floating point for
// computation. The stored form stays a string.
func parseAmount(s string) (float64, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	f, _ := d.Float64()
	return f, true
}

func formatUSD(d decimal.Decimal) string {
	neg := d.IsNegative()
	fixed := d.Abs().StringFixed(2)

	// Insert thousands separators into the integer part
	dot := strings.IndexByte(fixed, '.')
	intPart, fracPart := fixed[:dot], fixed[dot:]
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteString(fracPart)
	return b.String()
}
