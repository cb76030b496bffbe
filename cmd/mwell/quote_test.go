package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"mwell-store/internal/cart"
	"mwell-store/internal/model"
	"mwell-store/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuoteItems(t *testing.T) {
	items, err := parseQuoteItems([]string{"mv-001:2", "mc-002"})
	require.NoError(t, err)
	assert.Equal(t, []model.QuoteItem{
		{ProductID: "mv-001", Quantity: 2},
		{ProductID: "mc-002", Quantity: 1},
	}, items)

	_, err = parseQuoteItems([]string{"mv-001:two"})
	assert.Error(t, err)

	_, err = parseQuoteItems([]string{":3"})
	assert.Error(t, err)
}

func TestQuoteCommand(t *testing.T) {
	var received model.QuoteRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/pricing/quote", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		summary := pricing.Quote([]cart.LineItem{
			{Product: model.Product{ID: "mv-001", Name: "Multivitamins + Iron", Price: 959}, Quantity: 2},
		}, false, pricing.PaymentCard)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}))
	defer server.Close()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{
		"--api-url", server.URL,
		"--local-file", filepath.Join(t.TempDir(), "appointments.json"),
		"quote", "mv-001:2", "--payment", "CARD",
	})

	require.NoError(t, root.Execute())
	assert.Equal(t, []model.QuoteItem{{ProductID: "mv-001", Quantity: 2}}, received.Items)
	assert.Equal(t, "CARD", received.PaymentMethod)
	assert.Contains(t, out.String(), "Multivitamins + Iron")
	assert.Contains(t, out.String(), "Total")
}
