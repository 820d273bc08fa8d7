package budgetview

import (
	"context"

	"github.com/pkg/errors"
)

// transactionService implements the TransactionService interface
type transactionService struct {
	client *Client
}

// Map fetches and parses the transactions document. The wire shape is an
// object with a single "transactions" key holding the id->record mapping.
func (s *transactionService) Map(ctx context.Context) (map[string]*Transaction, error) {
	var doc struct {
		Transactions map[string]interface{} `json:"transactions"`
	}
	if err := s.client.get(ctx, TransactionsPath, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to fetch transactions")
	}

	parsed := ParseTransactions(doc.Transactions)
	if dropped := len(doc.Transactions) - len(parsed); dropped > 0 && s.client.options.Logger != nil {
		s.client.options.Logger.Warn("dropped malformed transactions", "dropped", dropped, "total", len(doc.Transactions))
	}
	return parsed, nil
}

// Lookup finds a transaction by id, falling back to a placeholder decoded
// from the id itself when the mapping doesn't carry it.
func (s *transactionService) Lookup(transactions map[string]*Transaction, id string) *Transaction {
	if t, ok := transactions[id]; ok {
		return t
	}
	return PlaceholderFromID(id)
}
