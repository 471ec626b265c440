// Package llm is a minimal OpenAI Chat Completions client used to refine
// rule-based advice and diagnoses into friendlier text.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
)

const defaultBaseURL = "https://api.openai.com/v1"

const systemPrompt = "You are a helpful gardening assistant. " +
	"Explain things clearly, step by step, for beginner gardeners."

// Options configures the model parameters for chat requests.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// DefaultOptions returns the built-in model parameters.
func DefaultOptions() Options {
	return Options{Model: "gpt-4.1-mini", Temperature: 0.4, MaxTokens: 600}
}

// Client is an authenticated Chat Completions client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	opts       Options
}

// APIKey reads the OpenAI API key from the environment, loading a .env
// file first if one is present. A missing key is a configuration error.
func APIKey() (string, error) {
	_ = godotenv.Load()
	key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if key == "" {
		return "", fmt.Errorf("OPENAI_API_KEY is not set (export it or add it to a .env file)")
	}
	return key, nil
}

// NewClient creates a client whose requests carry the API key as a bearer
// token.
func NewClient(ctx context.Context, apiKey string, opts Options) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiKey})
	return &Client{
		httpClient: oauth2.NewClient(ctx, ts),
		baseURL:    defaultBaseURL,
		opts:       opts,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Chat sends a single user prompt under the fixed gardening system prompt
// and returns the model's reply.
func (c *Client) Chat(ctx context.Context, prompt string) (string, error) {
	payload := chatRequest{
		Model: c.opts.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: c.opts.Temperature,
		MaxTokens:   c.opts.MaxTokens,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat API request failed: %w", err)
	}
	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decoding chat response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("chat API error %d: %s", resp.StatusCode, parsed.Error.Message)
		}
		return "", fmt.Errorf("chat API error %d: %s", resp.StatusCode, string(respBody))
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat API returned no choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// Refine sends prompt to the model and returns the reply, falling back to
// the given text when the call fails. The error is returned alongside so
// callers can surface a warning.
func (c *Client) Refine(ctx context.Context, prompt, fallback string) (string, error) {
	reply, err := c.Chat(ctx, prompt)
	if err != nil || reply == "" {
		return fallback, err
	}
	return reply, nil
}
