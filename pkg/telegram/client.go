package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-contact-notifier/config"
)

// Client sends messages through the Telegram Bot API over plain HTTP.
// It performs a single best-effort sendMessage call per submission: no retries,
// no circuit breaking. Interpreting the API's "ok" flag is the caller's job.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// sendMessageRequest is the sendMessage endpoint payload
type sendMessageRequest struct {
	ChatID                int64  `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
	MessageThreadID       *int64 `json:"message_thread_id,omitempty"`
}

// SendResult is the Bot API response envelope, returned to the caller unchanged
type SendResult struct {
	Ok          bool         `json:"ok"`
	Result      *SentMessage `json:"result,omitempty"`
	ErrorCode   int          `json:"error_code,omitempty"`
	Description string       `json:"description,omitempty"`
}

// SentMessage carries the platform-assigned id of a delivered message
type SentMessage struct {
	MessageID int64 `json:"message_id"`
}

// NewClient creates a Telegram client from the app configuration
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.TelegramAPIBaseURL, "/"),
		token:   cfg.BotToken,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		},
	}
}

// Send posts one sendMessage call and returns the parsed API response.
// A nil topicID targets the chat's default thread. The returned SendResult is
// not interpreted here; err is non-nil only for transport or decoding failures.
func (c *Client) Send(ctx context.Context, chatID int64, text string, topicID *int64) (*SendResult, error) {
	payload := sendMessageRequest{
		ChatID:                chatID,
		Text:                  text,
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
		MessageThreadID:       topicID,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sendMessage payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, c.redact(fmt.Errorf("failed to build sendMessage request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error includes the request URL, and with it the token
		return nil, c.redact(fmt.Errorf("sendMessage request failed: %w", err))
	}
	defer resp.Body.Close()

	var result SendResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode sendMessage response (HTTP %d): %w", resp.StatusCode, err)
	}

	return &result, nil
}

// IsConfigured checks if the client has a bot token to authenticate with
func (c *Client) IsConfigured() bool {
	return c.token != ""
}

// redact strips the bot token from error text before it can reach logs or
// response bodies
func (c *Client) redact(err error) error {
	if err == nil || c.token == "" {
		return err
	}
	return fmt.Errorf("%s", strings.ReplaceAll(err.Error(), c.token, "[REDACTED]"))
}
