package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetview/budgetview-go/pkg/budgetview"
)

const storeTestTransactions = `{
	"transactions": {
		"t1": {
			"account_name": "Checking",
			"amount": "17.25",
			"category": "groceries",
			"date": "2021-03-15",
			"description": "Market",
			"labels": "",
			"notes": "",
			"original_category": "GROCERY",
			"original_description": "MARKET 123",
			"person": "alex",
			"tags": [],
			"transaction_type": "Debit"
		}
	}
}`

const storeTestReports = `[
	{
		"key": "cashflow",
		"report": {"name": "Cashflow", "config": {"type": "Cashflow"}},
		"data": {"credit": "100", "debit": "50"}
	}
]`

func newTestStore(t *testing.T, handler http.Handler) (*Store, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := budgetview.NewClient(&budgetview.ClientOptions{BaseURL: server.URL})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewStore(client, logger), server
}

func TestStoreRefresh(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case budgetview.ReportsPath:
			w.Write([]byte(storeTestReports))
		case budgetview.TransactionsPath:
			w.Write([]byte(storeTestTransactions))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	require.NoError(t, store.Refresh(context.Background()))
	require.Len(t, store.Reports(), 1)
	assert.Equal(t, "cashflow", store.Reports()[0].Key)
	assert.Equal(t, "Market", store.Transaction("t1").Description)
	assert.False(t, store.RefreshedAt().IsZero())
}

func TestStoreRefresh_FailedReportsFetchLeavesTransactionsAlone(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case budgetview.ReportsPath:
			w.WriteHeader(http.StatusInternalServerError)
		case budgetview.TransactionsPath:
			// Land after the reports fetch has already failed
			time.Sleep(50 * time.Millisecond)
			w.Write([]byte(storeTestTransactions))
		}
	}))

	err := store.Refresh(context.Background())
	require.Error(t, err)

	// The slow transactions fetch still replaced its own slot
	fetched := store.Transaction("t1")
	require.NotNil(t, fetched)
	assert.Equal(t, "Checking", fetched.AccountName)
	assert.Equal(t, "Market", fetched.Description)

	assert.Empty(t, store.Reports())
	assert.False(t, store.RefreshedAt().IsZero())
}

func TestStoreRefresh_FailedTransactionsFetchLeavesReportsAlone(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case budgetview.ReportsPath:
			time.Sleep(50 * time.Millisecond)
			w.Write([]byte(storeTestReports))
		case budgetview.TransactionsPath:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	err := store.Refresh(context.Background())
	require.Error(t, err)
	require.Len(t, store.Reports(), 1)
	assert.Equal(t, "cashflow", store.Reports()[0].Key)
}

func TestStoreTransaction_PlaceholderForUnknownID(t *testing.T) {
	store, _ := newTestStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	placeholder := store.Transaction("202103150001234500D")
	require.NotNil(t, placeholder)
	assert.Equal(t, "Unknown", placeholder.AccountName)
	assert.Equal(t, budgetview.TransactionDebit, placeholder.TransactionType)
}
