//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

// AssertErrorResponse accepts both error body shapes the API produces: a
// plain {"error": "..."} string and the structured
// {"error": {"code": "...", "message": "..."}} payload.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	if expectedErrorMsg == "" {
		return
	}

	assert.Contains(t, extractErrorMessage(t, w.Body.Bytes()), expectedErrorMsg,
		"Response error message doesn't contain expected text")
}

// AssertErrorCode checks the machine-readable error code on structured
// error payloads.
func AssertErrorCode(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedCode string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))
	assert.Equal(t, expectedCode, resp.Error.Code)
}

func extractErrorMessage(t *testing.T, body []byte) string {
	t.Helper()

	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		assert.Fail(t, fmt.Sprintf("Failed to decode error response JSON: %s", string(body)))
		return ""
	}

	var plain string
	if err := json.Unmarshal(envelope.Error, &plain); err == nil {
		return plain
	}

	var structured struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope.Error, &structured); err == nil {
		return structured.Message
	}

	assert.Fail(t, fmt.Sprintf("Unrecognized error payload: %s", string(body)))
	return ""
}
