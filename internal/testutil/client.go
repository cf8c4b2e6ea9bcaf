package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
)

// DoRequest issues an HTTP request against the test server. A non-empty
// token is sent in the TOKEN header; a nil body sends no payload.
func DoRequest(t *testing.T, ts *TestServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var payload *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		payload = bytes.NewBuffer(data)
	} else {
		payload = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, ts.URL(path), payload)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("TOKEN", token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}
