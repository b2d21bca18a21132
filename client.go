package learningassistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Dispatcher sends a validated Submission to the backend
type Dispatcher interface {
	Dispatch(ctx context.Context, sub Submission) (*LearningResult, error)
}

// Client talks to the learning backend's two JSON endpoints
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the API rooted at baseURL. A nil httpClient
// uses a client without a timeout; requests run until they settle or ctx ends.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

// Dispatch posts sub to its endpoint and decodes the reply. The body is read
// in full before parsing so that a body that is not JSON is reported apart
// from a JSON error object.
func (c *Client) Dispatch(ctx context.Context, sub Submission) (*LearningResult, error) {
	path, payload := sub.endpoint()

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, newError(KindTransport, err.Error(), err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Infow("submitting to backend", "mode", sub.Kind, "endpoint", path, "api_url", c.baseURL)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, newError(KindTransport, err.Error(), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(KindTransport, err.Error(), err)
	}
	VerboseLog("raw response text", "mode", sub.Kind, "status", resp.StatusCode, "body", string(raw))

	return decodeResponse(resp.StatusCode, raw, sub.fallbackMessage())
}

// decodeResponse applies the response policy shared by both endpoints. A 2xx
// body of JSON null yields neither a result nor an error.
func decodeResponse(status int, raw []byte, fallback string) (*LearningResult, error) {
	if !json.Valid(raw) {
		return nil, newError(KindMalformed, MsgMalformedResponse, nil)
	}

	if status < 200 || status > 299 {
		msg := fallback
		var eb errorBody
		if err := json.Unmarshal(raw, &eb); err == nil && len(eb.Error) > 0 {
			var s string
			if json.Unmarshal(eb.Error, &s) == nil && s != "" {
				msg = s
			}
		}
		return nil, &Error{Kind: KindAPI, Message: msg, Status: status}
	}

	if string(bytes.TrimSpace(raw)) == "null" {
		return nil, nil
	}

	var result LearningResult
	if err := json.Unmarshal(raw, &result); err != nil {
		// valid JSON that is not an object, e.g. an array or a bare string
		return nil, newError(KindMalformed, MsgMalformedResponse, err)
	}
	result.Raw = append(json.RawMessage(nil), raw...)

	VerboseLog("parsed response", "title", result.Title, "key_points", len(result.KeyPoints), "questions", len(result.QuizQuestions))
	return &result, nil
}
