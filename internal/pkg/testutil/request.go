package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewJSONRequest builds an *http.Request with a JSON-encoded body and the
// matching Content-Type header.
func NewJSONRequest(t *testing.T, method string, target string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, target, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	return req
}

// DecodeJSONResponse decodes a JSON response body into out.
func DecodeJSONResponse(t *testing.T, data []byte, out interface{}) {
	t.Helper()

	require.NoError(t, json.Unmarshal(data, out))
}
