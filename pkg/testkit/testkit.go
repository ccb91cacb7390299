// Package testkit provides helpers for exercising HTTP handlers in tests.
package testkit

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// Do runs one request through handler and returns the recorder.
// A non-nil body is JSON-encoded.
func Do(t *testing.T, handler http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err, "marshal request body")
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// DoMultipart runs one multipart/form-data request with a single file field.
func DoMultipart(t *testing.T, handler http.Handler, method, target, field, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err, "create form file")
	_, err = part.Write(content)
	require.NoError(t, err, "write form file")
	require.NoError(t, mw.Close(), "close multipart writer")

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// DecodeJSON unmarshals the recorded response body into dest.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest),
		"response is not valid JSON: %s", rec.Body.String())
}

// ErrorMessage returns the "error" field of a JSON error body.
func ErrorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	DecodeJSON(t, rec, &body)
	msg, _ := body["error"].(string)
	return msg
}
