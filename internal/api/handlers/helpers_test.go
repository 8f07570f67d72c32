package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/nahidasmakeover/boutique/internal/utils/response"
	"github.com/stretchr/testify/require"
)

// decodeData unwraps the response envelope into dest and returns the envelope.
func decodeData(t *testing.T, rr *httptest.ResponseRecorder, dest any) *response.APIResponse {
	t.Helper()

	var resp *response.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	if dest != nil && resp.Data != nil {
		databytes, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(databytes, dest))
	}

	return resp
}
