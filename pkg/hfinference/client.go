package hfinference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client calls the Hugging Face inference router to extract tasks from text.
type Client struct {
	apiURL      string
	accessToken string
	model       string
	httpClient  *http.Client
}

// Config holds the client configuration.
type Config struct {
	AccessToken string
	Model       string
	APIURL      string
	HTTPClient  *http.Client
}

// NewClient creates a new extraction client. Zero-value fields get defaults.
func NewClient(cfg Config) *Client {
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		apiURL:      apiURL,
		accessToken: cfg.AccessToken,
		model:       cfg.Model,
		httpClient:  httpClient,
	}
}

// SetAPIURL overrides the endpoint. Intended for tests.
func (c *Client) SetAPIURL(u string) {
	c.apiURL = u
}

// Model returns the model being used.
func (c *Client) Model() string {
	return c.model
}

// ExtractTasks sends text to the inference endpoint and returns the extracted
// candidate tasks. Failures are classified as *Error. The returned slice may
// be empty; every returned task has a non-empty title. The call has no side
// effects beyond the network request.
func (c *Client) ExtractTasks(ctx context.Context, text string) ([]Task, error) {
	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: fmt.Sprintf(extractionPrompt, text)},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: fmt.Sprintf("failed to marshal request: %v", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: fmt.Sprintf("failed to create request: %v", err)}
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: fmt.Sprintf("failed to call inference API: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, c.classifyHTTPError(resp.StatusCode, raw)
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &Error{Kind: KindMalformedResponse, Message: fmt.Sprintf("failed to decode inference response: %v", err)}
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return nil, &Error{Kind: KindMalformedResponse, Message: "no text generated for task extraction"}
	}

	return parseTaskArray(result.Choices[0].Message.Content)
}

// classifyHTTPError maps a non-200 status and body to a typed extraction error.
func (c *Client) classifyHTTPError(status int, raw []byte) *Error {
	detail := decodeErrorDetail(raw)

	switch {
	case status == http.StatusServiceUnavailable:
		return &Error{
			Kind:    KindServiceBusy,
			Message: fmt.Sprintf("model is loading or busy: %s. Please try again in a few moments", detail),
		}
	case status == http.StatusBadRequest && strings.Contains(detail, "model_not_supported"):
		return &Error{
			Kind:    KindUnsupportedModel,
			Message: fmt.Sprintf("model %q is not supported by your enabled providers or plan: %s", c.model, detail),
		}
	case status == http.StatusNotFound:
		return &Error{
			Kind:    KindNotFound,
			Message: fmt.Sprintf("model %q might be incorrect, private, or unavailable on this endpoint", c.model),
		}
	default:
		return &Error{
			Kind:    KindUnknown,
			Message: fmt.Sprintf("inference API error (%d): %s", status, detail),
		}
	}
}

// decodeErrorDetail pulls a human-readable message out of the error envelope.
// The "error" field may be a string or an object; falls back to the raw body.
func decodeErrorDetail(raw []byte) string {
	var envelope errorBody
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Error) == 0 {
		return strings.TrimSpace(string(raw))
	}

	var detail string
	var asString string
	if err := json.Unmarshal(envelope.Error, &asString); err == nil {
		detail = asString
	} else {
		var asObject errorObject
		if err := json.Unmarshal(envelope.Error, &asObject); err == nil && asObject.Message != "" {
			detail = asObject.Message
		} else {
			detail = strings.TrimSpace(string(envelope.Error))
		}
	}

	if envelope.EstimatedTime > 0 {
		detail += fmt.Sprintf(" (estimated wait: %.1fs)", envelope.EstimatedTime)
	}
	return detail
}

// parseTaskArray parses the model output into tasks. The model is instructed
// to return a bare JSON array but often wraps it in markdown code fences.
func parseTaskArray(content string) ([]Task, error) {
	content = stripCodeFences(content)

	var tasks []Task
	if err := json.Unmarshal([]byte(content), &tasks); err != nil {
		return nil, &Error{
			Kind:    KindMalformedResponse,
			Message: fmt.Sprintf("model returned unparseable or invalid JSON for tasks: %v", err),
		}
	}

	for i, t := range tasks {
		if strings.TrimSpace(t.Title) == "" {
			return nil, &Error{
				Kind:    KindMalformedResponse,
				Message: fmt.Sprintf("extracted task %d has an empty title", i),
			}
		}
	}
	return tasks, nil
}

// stripCodeFences removes surrounding ```json ... ``` or ``` ... ``` fences.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
