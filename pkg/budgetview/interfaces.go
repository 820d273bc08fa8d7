package budgetview

import "context"

// ReportService fetches and parses the precomputed reports document
type ReportService interface {
	// List fetches the reports document and returns the best-effort parsed
	// report list; malformed envelopes are dropped, not surfaced as errors
	List(ctx context.Context) ([]*Report, error)

	// Get retrieves a single report by its key
	Get(ctx context.Context, key string) (*Report, error)
}

// TransactionService fetches and parses the transactions document
type TransactionService interface {
	// Map fetches the transactions document and returns the id->transaction
	// mapping; records failing validation are dropped
	Map(ctx context.Context) (map[string]*Transaction, error)

	// Lookup finds a transaction by id, synthesizing a placeholder from the
	// id's embedded fields when the id is absent from the mapping
	Lookup(transactions map[string]*Transaction, id string) *Transaction
}
