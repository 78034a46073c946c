package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/grabshow/storefront/internal/entity"
)

// apiClient is the shared JSON-over-HTTP plumbing for all gateways.
// Any transport failure or non-2xx response surfaces as a
// *entity.RemoteError; there is no retry and no backoff.
type apiClient struct {
	baseURL    string
	httpClient *http.Client
}

func newAPIClient(baseURL string, httpClient *http.Client) *apiClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &apiClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// do issues one request. body is marshalled to JSON when non-nil, out
// is unmarshalled from the response body when non-nil.
func (c *apiClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &entity.RemoteError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &entity.RemoteError{
			Status:  resp.StatusCode,
			Message: remoteMessage(resp.Body),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &entity.RemoteError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("failed to decode response: %v", err),
		}
	}
	return nil
}

// remoteMessage pulls the error message the remote attached, if any.
// The services answer either {"message": ...} or {"error": ...}.
func remoteMessage(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
