package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResult(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteResult(rr, http.StatusUnauthorized, false, "nope")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got Result
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, Result{Success: false, Message: "nope"}, got)
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteNotFound(rr, "missing")

	var got ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, http.StatusNotFound, got.Code)
	assert.Equal(t, "Not Found", got.Error)
	assert.Equal(t, "missing", got.Message)
}
