package handlers

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/paystream/txprocessor/internal/config"
)

func postBatch(t *testing.T, handler *SettlementHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/settlements", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ProcessBatch(rec, req)
	return rec
}

func TestSettlementHandler_ProcessBatch(t *testing.T) {
	handler := NewSettlementHandler(&config.Config{}, zap.NewNop())

	t.Run("processes a batch and returns the summary", func(t *testing.T) {
		rec := postBatch(t, handler, strings.Join([]string{
			"type, client, tx, amount",
			"deposit, 2, 1, 11.5",
			"dispute, 2, 1,",
			"chargeback, 2, 1,",
			"deposit, 3, 2, 4.0",
		}, "\n"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

		rows, err := csv.NewReader(rec.Body).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"client", "available", "held", "total", "locked"}, rows[0])

		byClient := map[string][]string{}
		for _, row := range rows[1:] {
			byClient[row[0]] = row
		}
		assert.Equal(t, []string{"2", "0", "0", "0", "true"}, byClient["2"])
		assert.Equal(t, []string{"3", "4", "0", "4", "false"}, byClient["3"])
	})

	t.Run("requests are isolated from each other", func(t *testing.T) {
		rec := postBatch(t, handler, "type, client, tx, amount\ndeposit, 2, 1, 1.0")

		assert.Equal(t, http.StatusOK, rec.Code)
		rows, err := csv.NewReader(rec.Body).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2, "accounts from earlier requests must not appear")
		assert.Equal(t, []string{"2", "1", "0", "1", "false"}, rows[1])
	})

	t.Run("malformed document", func(t *testing.T) {
		rec := postBatch(t, handler, "type, client, tx, amount\ndeposit, abc, 1, 1.0")

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp["error"], "invalid transactions document")
	})

	t.Run("missing header", func(t *testing.T) {
		rec := postBatch(t, handler, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
