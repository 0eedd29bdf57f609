package testutils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/teambuilder-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertErrorResponse checks that a recorded response carries the standard
// error body with the expected status and a message containing
// expectedErrorMsgPart. It returns the decoded body.
func AssertErrorResponse(
	t *testing.T,
	w *httptest.ResponseRecorder,
	expectedStatus int,
	expectedErrorMsgPart string,
) shared.ErrorResponse {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "unexpected status code")
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var errResp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp),
		"failed to unmarshal error response: %s", w.Body.String())
	assert.Contains(t, errResp.Error, expectedErrorMsgPart)
	return errResp
}
